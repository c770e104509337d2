package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/models"
)

// ErrStoreUnavailable indicates the metadata document is missing,
// unreadable, or does not match the expected shape.
var ErrStoreUnavailable = errors.New("metadata store unavailable")

// Store persists the full portfolio collection as a single JSON document.
// Whole-document replace semantics: Load reads everything, Save rewrites
// everything.
type Store struct {
	path string
}

// NewStore creates a store backed by the JSON document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads and decodes the full collection. It fails fast on a missing
// or malformed document rather than surfacing shape errors deeper in the
// request path.
func (s *Store) Load() ([]models.Portfolio, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var portfolios []models.Portfolio
	if err := json.Unmarshal(data, &portfolios); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", ErrStoreUnavailable, err)
	}

	return portfolios, nil
}

// Save replaces the on-disk document with the given collection. The write
// goes to a temp file in the same directory followed by a rename, so a
// failed save leaves the previous document undisturbed.
func (s *Store) Save(portfolios []models.Portfolio) error {
	if portfolios == nil {
		portfolios = []models.Portfolio{}
	}

	data, err := json.MarshalIndent(portfolios, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".portfolios-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Bootstrap ensures the document's directory exists and seeds an empty
// collection when no document is present yet. Called once at startup.
func (s *Store) Bootstrap() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return s.Save(nil)
}
