// Package settings provides the site settings endpoints.
package settings

import (
	"encoding/json"
	"net/http"

	"github.com/bright-coral-crab/tooldeck/internal/api/middleware"
	"github.com/bright-coral-crab/tooldeck/internal/api/respond"
	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

// Handler handles site settings endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates a new settings handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// Get returns the current site settings record.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())

	record, err := h.store.GetSettings(r.Context(), role)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.OK(w, record)
}

// Save replaces the site settings record wholesale.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())

	var record models.Settings
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respond.JSONError(w, respond.NewBadRequest("invalid request body"))
		return
	}

	if err := h.store.SaveSettings(r.Context(), role, record); err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.OK(w, record)
}
