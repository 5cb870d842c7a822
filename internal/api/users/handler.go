// Package users provides the admin user management endpoints.
package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bright-coral-crab/tooldeck/internal/api/middleware"
	"github.com/bright-coral-crab/tooldeck/internal/api/respond"
	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

// Handler handles user management endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates a new users handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// List returns the user roster, optionally filtered and sorted.
// Query parameters: q (substring filter), role, status ("all" passes
// everything), sort (field), dir (asc|desc).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())

	items, err := h.store.ListUsers(r.Context(), role)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	q := r.URL.Query()
	items = store.FilterUsers(items, store.UserFilter{
		Term:   q.Get("q"),
		Role:   q.Get("role"),
		Status: q.Get("status"),
	})

	if field := q.Get("sort"); field != "" {
		dir := store.Ascending
		if q.Get("dir") == string(store.Descending) {
			dir = store.Descending
		}
		items = store.SortUsers(items, field, dir)
	}

	respond.OK(w, items)
}

// Create adds a user to the roster. The server assigns the ID.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())

	var draft models.User
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respond.JSONError(w, respond.NewBadRequest("invalid request body"))
		return
	}

	created, err := h.store.CreateUser(r.Context(), role, draft)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.Created(w, created)
}

// Update replaces a user identified by ID.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	id := chi.URLParam(r, "id")

	var replacement models.User
	if err := json.NewDecoder(r.Body).Decode(&replacement); err != nil {
		respond.JSONError(w, respond.NewBadRequest("invalid request body"))
		return
	}

	updated, err := h.store.UpdateUser(r.Context(), role, id, replacement)
	if err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.OK(w, updated)
}

// Delete removes a user from the roster.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteUser(r.Context(), role, id); err != nil {
		respond.JSONError(w, respond.FromStoreError(err))
		return
	}

	respond.NoContent(w)
}
