package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bright-coral-crab/tooldeck/internal/api/middleware"
	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st := store.New(storage.NewMemoryKV())
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewHandler(st)
}

func doRequest(t *testing.T, h *Handler, role models.Role, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/settings", strings.NewReader(body))
	req = req.WithContext(middleware.WithIdentity(req.Context(), "admin", role))
	rec := httptest.NewRecorder()
	switch method {
	case "GET":
		h.Get(rec, req)
	default:
		h.Save(rec, req)
	}
	return rec
}

func TestGet_Defaults(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, models.RoleEditor, "GET", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Data models.Settings `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.SiteName != "AI Araçları Dizini" {
		t.Errorf("siteName = %q, want default", resp.Data.SiteName)
	}
	if resp.Data.ItemsPerPage != 10 {
		t.Errorf("itemsPerPage = %d, want 10", resp.Data.ItemsPerPage)
	}
}

func TestGet_ViewerDenied(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, models.RoleViewer, "GET", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestSave_AdminOnly(t *testing.T) {
	h := newTestHandler(t)

	body := `{"siteName": "Tool Directory", "itemsPerPage": 25, "theme": "dark"}`

	rec := doRequest(t, h, models.RoleEditor, "PUT", body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("editor save status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	rec = doRequest(t, h, models.RoleAdmin, "PUT", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin save status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	// The record is replaced wholesale: omitted fields reset.
	rec = doRequest(t, h, models.RoleAdmin, "GET", "")
	var resp struct {
		Data models.Settings `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.SiteName != "Tool Directory" {
		t.Errorf("siteName = %q, want %q", resp.Data.SiteName, "Tool Directory")
	}
	if resp.Data.AnalyticsID != "" {
		t.Errorf("analyticsId = %q, want empty after wholesale replace", resp.Data.AnalyticsID)
	}
}

func TestSave_InvalidPageSize(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, models.RoleAdmin, "PUT", `{"siteName": "X", "itemsPerPage": 51, "theme": "light"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}
