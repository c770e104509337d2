package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/models"
)

func TestLoadMissingDocument(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolios.json"))

	if _, err := store.Load(); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Load() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", "{not json"},
		{"wrong shape", `{"id": 1}`},
		{"wrong element shape", `[{"id": "one"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "portfolios.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			store := NewStore(path)
			if _, err := store.Load(); !errors.Is(err, ErrStoreUnavailable) {
				t.Errorf("Load() error = %v, want ErrStoreUnavailable", err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolios.json"))

	original := []models.Portfolio{
		{
			ID:    1,
			Title: "Minimalist Loft",
			Slug:  "minimalist-loft",
			Date:  "2024-03-01",
			Tags:  []string{"interior", "loft"},
			Images: []models.Image{
				{FileName: "1_1700000000_loft.jpg", Alt: "loft", Thumbnail: true},
			},
			Videos: []models.Video{},
		},
		{
			ID:     2,
			Title:  "Garden Studio",
			Slug:   "garden-studio",
			Date:   "2024-05-20",
			Images: []models.Image{},
			Videos: []models.Video{{FileName: "2_1700000001_tour.mp4"}},
		},
	}

	if err := store.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("Load() = %+v, want %+v", loaded, original)
	}

	// save(load()) must produce a document equal to the original
	if err := store.Save(loaded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	again, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(again, original) {
		t.Errorf("round trip changed the document: %+v", again)
	}
}

func TestBootstrapSeedsEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata", "portfolios.json")
	store := NewStore(path)

	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Load() returned %d portfolios, want 0", len(loaded))
	}
}

func TestBootstrapKeepsExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolios.json")
	store := NewStore(path)

	if err := store.Save([]models.Portfolio{{ID: 1, Title: "Kept", Slug: "kept", Date: "2024-01-01"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "Kept" {
		t.Errorf("Bootstrap() overwrote an existing document: %+v", loaded)
	}
}
