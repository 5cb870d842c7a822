// Package tools provides the tool catalog endpoints.
package tools

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/bright-coral-crab/tooldeck/internal/api/middleware"
	"github.com/bright-coral-crab/tooldeck/internal/api/respond"
	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

// Handler handles tool catalog endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates a new tools handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// List returns the catalog, optionally filtered and sorted.
// Query parameters: q (substring filter), sort (field), dir (asc|desc).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())

	items, err := h.store.ListTools(r.Context(), role)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	q := r.URL.Query()
	if term := q.Get("q"); term != "" {
		items = store.FilterTools(items, term)
	}
	if field := q.Get("sort"); field != "" {
		dir := store.Ascending
		if q.Get("dir") == string(store.Descending) {
			dir = store.Descending
		}
		items = store.SortTools(items, field, dir)
	}

	respond.OK(w, items)
}

// Create adds a tool to the catalog.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())

	var draft models.Tool
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respond.JSONError(w, respond.NewBadRequest("invalid request body"))
		return
	}

	created, err := h.store.CreateTool(r.Context(), role, draft)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.Created(w, created)
}

// toolName extracts the tool name path parameter. Tool names routinely
// contain spaces, so the escaped form is decoded before lookup.
func toolName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// Update replaces a tool identified by its name.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	name := toolName(r)

	var replacement models.Tool
	if err := json.NewDecoder(r.Body).Decode(&replacement); err != nil {
		respond.JSONError(w, respond.NewBadRequest("invalid request body"))
		return
	}

	updated, err := h.store.UpdateTool(r.Context(), role, name, replacement)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.OK(w, updated)
}

// Delete removes a tool from the catalog.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	name := toolName(r)

	if err := h.store.DeleteTool(r.Context(), role, name); err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.NoContent(w)
}
