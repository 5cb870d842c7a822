package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

// testServer creates a test server over an in-memory store.
func testServer(t *testing.T) *Server {
	t.Helper()

	kv := storage.NewMemoryKV()
	st := store.New(kv)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}

	cfg := &Config{
		Address:          ":0",
		JWTSecret:        []byte("test-jwt-secret-32-bytes-long!!"),
		AccessTokenTTL:   15 * time.Minute,
		RateLimitPerIP:   100,
		RateLimitPerUser: 100,
	}

	srv, err := New(cfg, st, kv)
	if err != nil {
		t.Fatalf("create server: %v", err)
	}
	return srv
}

// handler returns the HTTP handler for the server
func handler(srv *Server) http.Handler {
	return srv.server.Handler
}

// login performs a login and returns the access token.
func login(t *testing.T, srv *Server, role models.Role) string {
	t.Helper()

	body := `{"username":"admin","password":"admin123","role":"` + string(role) + `"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Data.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestReadyEndpoint(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/health/ready", nil)
	rec := httptest.NewRecorder()

	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := testServer(t)

	body := `{"username":"admin","password":"wrongpassword"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestProtectedEndpoint_NoToken(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/v1/tools", nil)
	rec := httptest.NewRecorder()

	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestProtectedEndpoint_WithToken(t *testing.T) {
	srv := testServer(t)
	token := login(t, srv, models.RoleViewer)

	req := httptest.NewRequest("GET", "/api/v1/tools", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Data []models.Tool `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 5 {
		t.Errorf("tools count = %d, want 5", len(resp.Data))
	}
}

func TestRoleTravelsInToken(t *testing.T) {
	srv := testServer(t)

	// A viewer token cannot create tools.
	viewerToken := login(t, srv, models.RoleViewer)
	body := `{"name": "X", "description": "d", "image": "i", "link": "l", "categories": ["Featured"]}`

	req := httptest.NewRequest("POST", "/api/v1/tools", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	rec := httptest.NewRecorder()
	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("viewer create status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	// An editor token from the same server can.
	editorToken := login(t, srv, models.RoleEditor)
	req = httptest.NewRequest("POST", "/api/v1/tools", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+editorToken)
	rec = httptest.NewRecorder()
	handler(srv).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("editor create status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler(srv).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}
