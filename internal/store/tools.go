package store

import (
	"context"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/rbac"
)

// ListTools returns the tools collection in insertion order. A role
// without view:tools gets a PermissionError, never an empty list, so
// "no data" and "no access" stay distinguishable.
func (s *Store) ListTools(ctx context.Context, role models.Role) (tools []models.Tool, err error) {
	defer func() { recordOp("list_tools", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermViewTools) {
		return nil, &PermissionError{Role: role, Permission: rbac.PermViewTools}
	}

	tools = make([]models.Tool, len(s.tools))
	for i, t := range s.tools {
		tools[i] = t.Clone()
	}
	return tools, nil
}

// CreateTool validates draft and appends it to the collection. The new
// snapshot is persisted before the in-memory collection changes.
func (s *Store) CreateTool(ctx context.Context, role models.Role, draft models.Tool) (tool models.Tool, err error) {
	defer func() { recordOp("create_tool", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermCreateTools) {
		return models.Tool{}, &PermissionError{Role: role, Permission: rbac.PermCreateTools}
	}

	draft = normalizeTool(draft)

	verr := validateTool(draft)
	if s.findTool(draft.Name) >= 0 {
		verr.add("name", "a tool with this name already exists")
	}
	if err := verr.orNil(); err != nil {
		return models.Tool{}, err
	}

	next := make([]models.Tool, len(s.tools), len(s.tools)+1)
	copy(next, s.tools)
	next = append(next, draft)

	if err := s.persistTools(ctx, next); err != nil {
		return models.Tool{}, err
	}
	s.tools = next

	return draft.Clone(), nil
}

// UpdateTool replaces the tool stored under name, keeping its position
// in the ordered collection. The name is the tool's identity; a
// replacement carrying a different name is rejected rather than
// silently orphaning the old entry.
func (s *Store) UpdateTool(ctx context.Context, role models.Role, name string, replacement models.Tool) (tool models.Tool, err error) {
	defer func() { recordOp("update_tool", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermEditTools) {
		return models.Tool{}, &PermissionError{Role: role, Permission: rbac.PermEditTools}
	}

	idx := s.findTool(name)
	if idx < 0 {
		return models.Tool{}, &NotFoundError{Kind: "tool", Key: name}
	}

	replacement = normalizeTool(replacement)

	verr := validateTool(replacement)
	if replacement.Name != "" && replacement.Name != name {
		verr.add("name", "tool name cannot be changed; delete and recreate instead")
	}
	if err := verr.orNil(); err != nil {
		return models.Tool{}, err
	}

	next := make([]models.Tool, len(s.tools))
	copy(next, s.tools)
	next[idx] = replacement

	if err := s.persistTools(ctx, next); err != nil {
		return models.Tool{}, err
	}
	s.tools = next

	return replacement.Clone(), nil
}

// DeleteTool removes the tool stored under name. Deleting an absent
// name surfaces NotFound; the same policy applies to users.
func (s *Store) DeleteTool(ctx context.Context, role models.Role, name string) (err error) {
	defer func() { recordOp("delete_tool", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !rbac.HasPermission(role, rbac.PermDeleteTools) {
		return &PermissionError{Role: role, Permission: rbac.PermDeleteTools}
	}

	idx := s.findTool(name)
	if idx < 0 {
		return &NotFoundError{Kind: "tool", Key: name}
	}

	next := make([]models.Tool, 0, len(s.tools)-1)
	next = append(next, s.tools[:idx]...)
	next = append(next, s.tools[idx+1:]...)

	if err := s.persistTools(ctx, next); err != nil {
		return err
	}
	s.tools = next

	return nil
}

// findTool returns the index of the tool with the exact name, or -1.
// Matching is case-sensitive.
func (s *Store) findTool(name string) int {
	for i, t := range s.tools {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// normalizeTool deep-copies the draft and enforces set semantics on the
// tag and category lists, preserving first-seen order.
func normalizeTool(draft models.Tool) models.Tool {
	out := draft
	out.Tags = dedupeStrings(draft.Tags)
	out.Categories = dedupeCategories(draft.Categories)
	return out
}

func dedupeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func dedupeCategories(in []models.Category) []models.Category {
	out := make([]models.Category, 0, len(in))
	seen := make(map[models.Category]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// validateTool collects every violated field of a tool draft.
func validateTool(t models.Tool) *ValidationError {
	verr := &ValidationError{}

	if t.Name == "" {
		verr.add("name", "tool name is required")
	}
	if t.Description == "" {
		verr.add("description", "description is required")
	}
	if t.Image == "" {
		verr.add("image", "image URL is required")
	}
	if t.Link == "" {
		verr.add("link", "link is required")
	}
	if t.Rating < 0 || t.Rating > 5 {
		verr.add("rating", "rating must be between 0 and 5")
	}
	if t.Reviews < 0 {
		verr.add("reviews", "review count cannot be negative")
	}
	if t.Bookmarks < 0 {
		verr.add("bookmarks", "bookmark count cannot be negative")
	}
	if len(t.Categories) == 0 {
		verr.add("categories", "at least one category is required")
	}
	for _, c := range t.Categories {
		if !models.ValidCategory(c) {
			verr.add("categories", "unknown category: "+string(c))
		}
	}

	return verr
}
