package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Files is the binary file store: a flat directory addressed by filename.
// The metadata document is the source of truth; directory contents are
// derived from it and never enumerated back into records.
type Files struct {
	dir string
}

// NewFiles creates a file store rooted at dir.
func NewFiles(dir string) *Files {
	return &Files{dir: dir}
}

// Bootstrap ensures the storage directory exists.
func (f *Files) Bootstrap() error {
	return os.MkdirAll(f.dir, 0755)
}

// Path returns the on-disk path for a stored filename. The name is reduced
// to its base component so a crafted name cannot escape the directory.
func (f *Files) Path(name string) string {
	return filepath.Join(f.dir, filepath.Base(name))
}

// Exists reports whether a file with the given name is present.
func (f *Files) Exists(name string) bool {
	_, err := os.Stat(f.Path(name))
	return err == nil
}

// Save writes src to the store under name and returns the name actually
// used. An already-taken name is uniquified with a numeric suffix before
// the extension; existing files are never overwritten.
func (f *Files) Save(name string, src io.Reader) (string, error) {
	final := filepath.Base(name)
	if f.Exists(final) {
		ext := filepath.Ext(final)
		base := strings.TrimSuffix(final, ext)
		for i := 1; ; i++ {
			candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
			if !f.Exists(candidate) {
				final = candidate
				break
			}
		}
	}

	dst, err := os.Create(f.Path(final))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(f.Path(final))
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return final, nil
}

// Remove deletes a stored file. Missing files are not an error; cleanup is
// best effort by design.
func (f *Files) Remove(name string) error {
	err := os.Remove(f.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
