package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/config"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/services"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func newFilesApp(t *testing.T) (*fiber.App, *storage.Files) {
	t.Helper()

	dir := t.TempDir()
	store := storage.NewStore(filepath.Join(dir, "portfolios.json"))
	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	files := storage.NewFiles(filepath.Join(dir, "files"))
	if err := files.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	cfg := &config.MainConfig{
		Server: config.ServerConfig{BaseURL: "http://localhost:5000"},
	}
	handler := NewPortfolioHandler(services.NewPortfolioService(cfg, store, files), files)

	app := fiber.New()
	app.Get("/files/:name", handler.DownloadFile)
	return app, files
}

func TestDownloadFile(t *testing.T) {
	app, files := newFilesApp(t)

	if _, err := files.Save("1_1700000000_plain.jpg", strings.NewReader("plain bytes")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := files.Save("1_1700000000_bedroom view.png", strings.NewReader("spaced bytes")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"plain name", "/files/1_1700000000_plain.jpg", http.StatusOK, "plain bytes"},
		{"escaped name", "/files/1_1700000000_bedroom%20view.png", http.StatusOK, "spaced bytes"},
		{"missing file", "/files/no-such-file.jpg", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody == "" {
				return
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("reading body: %v", err)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
