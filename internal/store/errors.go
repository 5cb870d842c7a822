package store

import (
	"fmt"
	"strings"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/rbac"
)

// PermissionError signals that the acting role lacks the permission an
// operation requires. It is never downgraded to an empty result.
type PermissionError struct {
	Role       models.Role
	Permission rbac.Permission
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: role %q lacks %q", e.Role, e.Permission)
}

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of an entity, not just
// the first, so callers can surface all problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns the error when it collected violations, nil otherwise.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NotFoundError signals that a lookup by key matched nothing.
type NotFoundError struct {
	Kind string // "tool" or "user"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// PersistenceError signals that the durable store failed. The in-memory
// collection is left untouched when this is returned.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
