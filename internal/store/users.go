package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/rbac"
)

// ListUsers returns the users collection in insertion order.
func (s *Store) ListUsers(ctx context.Context, role models.Role) (users []models.User, err error) {
	defer func() { recordOp("list_users", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermViewUsers) {
		return nil, &PermissionError{Role: role, Permission: rbac.PermViewUsers}
	}

	users = make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// CreateUser validates draft, assigns it a fresh id, and appends it to
// the collection. Any id supplied on the draft is discarded.
func (s *Store) CreateUser(ctx context.Context, role models.Role, draft models.User) (user models.User, err error) {
	defer func() { recordOp("create_user", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermCreateUsers) {
		return models.User{}, &PermissionError{Role: role, Permission: rbac.PermCreateUsers}
	}

	draft.ID = uuid.New().String()
	if s.findUser(draft.ID) >= 0 {
		// A duplicate UUID means the generator invariant is broken.
		// Never overwrite the existing user.
		return models.User{}, fmt.Errorf("user id collision: %s", draft.ID)
	}

	if draft.LastLogin == "" {
		draft.LastLogin = models.LastLoginNever
	}
	if draft.CreatedAt == "" {
		draft.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := validateUser(draft).orNil(); err != nil {
		return models.User{}, err
	}

	next := make([]models.User, len(s.users), len(s.users)+1)
	copy(next, s.users)
	next = append(next, draft)

	if err := s.persistUsers(ctx, next); err != nil {
		return models.User{}, err
	}
	s.users = next

	return draft, nil
}

// UpdateUser replaces the user stored under id in place. The id is
// immutable: a replacement carrying a different id is a validation
// error, not a rename.
func (s *Store) UpdateUser(ctx context.Context, role models.Role, id string, replacement models.User) (user models.User, err error) {
	defer func() { recordOp("update_user", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermEditUsers) {
		return models.User{}, &PermissionError{Role: role, Permission: rbac.PermEditUsers}
	}

	idx := s.findUser(id)
	if idx < 0 {
		return models.User{}, &NotFoundError{Kind: "user", Key: id}
	}

	verr := validateUser(replacement)
	if replacement.ID != "" && replacement.ID != id {
		verr.add("id", "user id is immutable")
	}
	if err := verr.orNil(); err != nil {
		return models.User{}, err
	}
	replacement.ID = id

	next := make([]models.User, len(s.users))
	copy(next, s.users)
	next[idx] = replacement

	if err := s.persistUsers(ctx, next); err != nil {
		return models.User{}, err
	}
	s.users = next

	return replacement, nil
}

// DeleteUser removes the user stored under id. Absent ids surface
// NotFound, matching the tools policy.
func (s *Store) DeleteUser(ctx context.Context, role models.Role, id string) (err error) {
	defer func() { recordOp("delete_user", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermDeleteUsers) {
		return &PermissionError{Role: role, Permission: rbac.PermDeleteUsers}
	}

	idx := s.findUser(id)
	if idx < 0 {
		return &NotFoundError{Kind: "user", Key: id}
	}

	next := make([]models.User, 0, len(s.users)-1)
	next = append(next, s.users[:idx]...)
	next = append(next, s.users[idx+1:]...)

	if err := s.persistUsers(ctx, next); err != nil {
		return err
	}
	s.users = next

	return nil
}

// findUser returns the index of the user with the given id, or -1.
func (s *Store) findUser(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// validateUser collects every violated field of a user draft.
func validateUser(u models.User) *ValidationError {
	verr := &ValidationError{}

	if u.Name == "" {
		verr.add("name", "name is required")
	}
	if u.Email == "" {
		verr.add("email", "email is required")
	}
	if !u.Role.Valid() {
		verr.add("role", "role must be one of: admin, editor, viewer")
	}
	if !u.Status.Valid() {
		verr.add("status", "status must be one of: active, inactive")
	}

	return verr
}
