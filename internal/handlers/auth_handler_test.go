package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/auth"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/config"

	"github.com/gofiber/fiber/v2"
)

func newLoginApp(issuer *auth.Issuer) *fiber.App {
	handler := NewAuthHandler(issuer, config.AuthConfig{
		Secret:        "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "hunter2",
		TokenTTL:      24 * time.Hour,
	})
	app := fiber.New()
	app.Post("/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	app := newLoginApp(issuer)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing body", "", http.StatusBadRequest},
		{"missing password", `{"email":"admin@example.com"}`, http.StatusBadRequest},
		{"unknown email", `{"email":"intruder@example.com","password":"hunter2"}`, http.StatusUnauthorized},
		{"wrong password", `{"email":"admin@example.com","password":"wrong"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, tt.body)
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	app := newLoginApp(issuer)

	resp := postJSON(t, app, `{"email":"admin@example.com","password":"hunter2"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !body.Status || body.Data == "" {
		t.Fatalf("login response = %+v", body)
	}

	claims, err := issuer.Verify(body.Data)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("claims.Email = %q, want %q", claims.Email, "admin@example.com")
	}
}
