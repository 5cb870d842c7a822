package store

import (
	"context"
	"errors"
	"testing"

	"github.com/bright-coral-crab/tooldeck/internal/models"
)

func TestGetSettings_Defaults(t *testing.T) {
	s, _ := newTestStore(t)

	settings, err := s.GetSettings(context.Background(), models.RoleEditor)
	if err != nil {
		t.Fatalf("editor holds view:settings: %v", err)
	}
	if settings.SiteName != "AI Araçları Dizini" {
		t.Errorf("site name = %q", settings.SiteName)
	}
	if settings.ItemsPerPage != 10 {
		t.Errorf("items per page = %d, want 10", settings.ItemsPerPage)
	}
}

func TestGetSettings_ViewerDenied(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetSettings(context.Background(), models.RoleViewer)
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("want PermissionError, got %v", err)
	}
}

func TestSaveSettings_WholesaleReplacement(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	record := models.Settings{
		SiteName:     "Yeni Dizin",
		ContactEmail: "yeni@example.com",
		ItemsPerPage: 25,
		Theme:        models.ThemeDark,
	}

	if err := s.SaveSettings(ctx, models.RoleAdmin, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := s.GetSettings(ctx, models.RoleAdmin)
	if got != record {
		t.Errorf("settings not replaced wholesale:\ngot  %+v\nwant %+v", got, record)
	}
	// Fields absent from the record are replaced too, not merged.
	if got.SiteDescription != "" || got.EnableNotifications {
		t.Error("save merged instead of replacing")
	}
}

func TestSaveSettings_EditorDenied(t *testing.T) {
	s, _ := newTestStore(t)

	record := models.Settings{ItemsPerPage: 10, Theme: models.ThemeLight}
	err := s.SaveSettings(context.Background(), models.RoleEditor, record)
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("editor may view but not edit settings, got %v", err)
	}
}

func TestSaveSettings_PageSizeBounds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, n := range []int{4, 51, 0, -1} {
		record := models.Settings{ItemsPerPage: n, Theme: models.ThemeLight}
		err := s.SaveSettings(ctx, models.RoleAdmin, record)
		if !fieldNames(t, err)["itemsPerPage"] {
			t.Errorf("items per page %d accepted", n)
		}
	}

	for _, n := range []int{5, 50} {
		record := models.Settings{ItemsPerPage: n, Theme: models.ThemeLight}
		if err := s.SaveSettings(ctx, models.RoleAdmin, record); err != nil {
			t.Errorf("boundary value %d rejected: %v", n, err)
		}
	}
}
