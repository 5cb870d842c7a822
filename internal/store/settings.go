package store

import (
	"context"
	"fmt"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/rbac"
)

// GetSettings returns the singleton settings record.
func (s *Store) GetSettings(ctx context.Context, role models.Role) (settings models.Settings, err error) {
	defer func() { recordOp("get_settings", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermViewSettings) {
		return models.Settings{}, &PermissionError{Role: role, Permission: rbac.PermViewSettings}
	}

	return s.settings, nil
}

// SaveSettings replaces the settings record wholesale. The items-per-
// page bound is re-checked here even though the input boundary already
// enforces it.
func (s *Store) SaveSettings(ctx context.Context, role models.Role, record models.Settings) (err error) {
	defer func() { recordOp("save_settings", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermEditSettings) {
		return &PermissionError{Role: role, Permission: rbac.PermEditSettings}
	}

	verr := &ValidationError{}
	if record.ItemsPerPage < models.MinItemsPerPage || record.ItemsPerPage > models.MaxItemsPerPage {
		verr.add("itemsPerPage", fmt.Sprintf("items per page must be between %d and %d",
			models.MinItemsPerPage, models.MaxItemsPerPage))
	}
	if !record.Theme.Valid() {
		verr.add("theme", "theme must be one of: light, dark, system")
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	if err := s.persistSettings(ctx, record); err != nil {
		return err
	}
	s.settings = record

	return nil
}
