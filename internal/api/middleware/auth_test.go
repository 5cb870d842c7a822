package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bright-coral-crab/tooldeck/internal/api/auth"
	"github.com/bright-coral-crab/tooldeck/internal/models"
)

func TestJWTAuth_ValidToken(t *testing.T) {
	secret := []byte("test-secret-key-32-bytes-long!!")
	jwtService := auth.NewJWTService(secret, 15*time.Minute)

	token, err := jwtService.GenerateToken("admin", models.RoleEditor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	// Create handler that checks context values
	var gotUsername string
	var gotRole models.Role
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername = GetUsername(r.Context())
		gotRole = GetRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	wrapped := JWTAuth(jwtService)(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotUsername != "admin" {
		t.Errorf("Username = %q, want %q", gotUsername, "admin")
	}
	if gotRole != models.RoleEditor {
		t.Errorf("Role = %q, want %q", gotRole, models.RoleEditor)
	}
}

func TestJWTAuth_MissingToken(t *testing.T) {
	secret := []byte("test-secret-key-32-bytes-long!!")
	jwtService := auth.NewJWTService(secret, 15*time.Minute)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	wrapped := JWTAuth(jwtService)(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	secret := []byte("test-secret-key-32-bytes-long!!")
	jwtService := auth.NewJWTService(secret, 15*time.Minute)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	wrapped := JWTAuth(jwtService)(handler)

	tests := []struct {
		name   string
		header string
	}{
		{"invalid format", "NotBearer token"},
		{"invalid token", "Bearer invalid-token"},
		{"empty bearer", "Bearer "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret-key-32-bytes-long!!")
	jwtService := auth.NewJWTService(secret, 1*time.Millisecond)

	token, err := jwtService.GenerateToken("admin", models.RoleViewer)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	wrapped := JWTAuth(jwtService)(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestContextHelpers_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	ctx := req.Context()

	if got := GetUsername(ctx); got != "" {
		t.Errorf("GetUsername() = %q, want empty", got)
	}
	if got := GetRole(ctx); got != "" {
		t.Errorf("GetRole() = %q, want empty", got)
	}
}
