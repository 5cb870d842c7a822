package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/rbac"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

func TestFromStoreError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "permission error maps to 403",
			err:        &store.PermissionError{Role: models.RoleViewer, Permission: rbac.PermCreateTools},
			wantCode:   ErrCodePermissionDenied,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "validation error maps to 400",
			err:        &store.ValidationError{Fields: []store.FieldError{{Field: "name", Message: "name is required"}}},
			wantCode:   ErrCodeValidationFailed,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found error maps to 404",
			err:        &store.NotFoundError{Kind: "tool", Key: "DataBot"},
			wantCode:   ErrCodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "persistence error maps to 500",
			err:        &store.PersistenceError{Key: "adminTools", Err: errors.New("disk full")},
			wantCode:   ErrCodePersistenceFailure,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown error maps to internal error",
			err:        errors.New("boom"),
			wantCode:   ErrCodeInternalError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStoreError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestFromStoreError_WrappedError(t *testing.T) {
	inner := &store.NotFoundError{Kind: "user", Key: "42"}
	err := fmt.Errorf("delete user: %w", inner)

	got := FromStoreError(err)
	if got.Code != ErrCodeNotFound {
		t.Errorf("Code = %q, want %q", got.Code, ErrCodeNotFound)
	}
}

func TestFromStoreError_ValidationDetails(t *testing.T) {
	ve := &store.ValidationError{Fields: []store.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "rating", Message: "rating must be between 0 and 5"},
	}}

	got := FromStoreError(ve)
	if len(got.Details) != 2 {
		t.Fatalf("len(Details) = %d, want 2", len(got.Details))
	}
	if got.Details[0].Field != "name" || got.Details[1].Field != "rating" {
		t.Errorf("Details fields = %q, %q, want name, rating", got.Details[0].Field, got.Details[1].Field)
	}
}

func TestJSONError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, FromStoreError(&store.PermissionError{Role: models.RoleViewer, Permission: rbac.PermEditSettings}))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected error in envelope")
	}
	if resp.Error.Code != ErrCodePermissionDenied {
		t.Errorf("error code = %q, want %q", resp.Error.Code, ErrCodePermissionDenied)
	}
	if resp.Data != nil {
		t.Errorf("data = %v, want nil", resp.Data)
	}
}

func TestJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != nil {
		t.Errorf("unexpected error: %+v", resp.Error)
	}
}
