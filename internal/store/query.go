package store

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bright-coral-crab/tooldeck/internal/models"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState tracks the active sort of a listing. Toggling the current
// field flips the direction; selecting a new field resets to ascending.
type SortState struct {
	Field     string
	Direction Direction
}

// Toggle applies a sort selection to the state.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Field = field
	s.Direction = Ascending
}

// newCollator builds a locale-aware string comparator. Collators are
// not safe for concurrent use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// SortTools returns a sorted copy of tools. Strings compare under
// locale-aware collation, numbers numerically, and booleans with false
// before true ascending. The sort is stable: equal keys keep their
// original relative order. Unknown fields leave the order unchanged.
func SortTools(tools []models.Tool, field string, dir Direction) []models.Tool {
	out := make([]models.Tool, len(tools))
	copy(out, tools)

	cmp := toolComparator(field)
	if cmp == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func toolComparator(field string) func(a, b models.Tool) int {
	col := newCollator()
	switch field {
	case "name":
		return func(a, b models.Tool) int { return col.CompareString(a.Name, b.Name) }
	case "description":
		return func(a, b models.Tool) int { return col.CompareString(a.Description, b.Description) }
	case "rating":
		return func(a, b models.Tool) int { return compareFloats(a.Rating, b.Rating) }
	case "reviews":
		return func(a, b models.Tool) int { return a.Reviews - b.Reviews }
	case "bookmarks":
		return func(a, b models.Tool) int { return a.Bookmarks - b.Bookmarks }
	case "featured":
		return func(a, b models.Tool) int { return compareBools(a.Featured, b.Featured) }
	default:
		return nil
	}
}

// SortUsers returns a sorted copy of users under the same comparison
// policy as SortTools.
func SortUsers(users []models.User, field string, dir Direction) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)

	cmp := userComparator(field)
	if cmp == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func userComparator(field string) func(a, b models.User) int {
	col := newCollator()
	switch field {
	case "name":
		return func(a, b models.User) int { return col.CompareString(a.Name, b.Name) }
	case "email":
		return func(a, b models.User) int { return col.CompareString(a.Email, b.Email) }
	case "role":
		return func(a, b models.User) int { return col.CompareString(string(a.Role), string(b.Role)) }
	case "status":
		return func(a, b models.User) int { return col.CompareString(string(a.Status), string(b.Status)) }
	case "lastLogin":
		return func(a, b models.User) int { return strings.Compare(a.LastLogin, b.LastLogin) }
	case "createdAt":
		return func(a, b models.User) int { return strings.Compare(a.CreatedAt, b.CreatedAt) }
	default:
		return nil
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// false sorts before true ascending; true is "greater".
func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// FilterTools returns the tools whose name, description, or any tag
// contains term, case-insensitively. An empty term matches everything.
// Filtering happens before sorting.
func FilterTools(tools []models.Tool, term string) []models.Tool {
	if term == "" {
		out := make([]models.Tool, len(tools))
		copy(out, tools)
		return out
	}

	needle := strings.ToLower(term)
	out := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if toolMatches(t, needle) {
			out = append(out, t)
		}
	}
	return out
}

func toolMatches(t models.Tool, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// UserFilter selects users by search term, role, and status. The
// dimensions compose with AND semantics; "all" or empty disables one.
type UserFilter struct {
	Term   string
	Role   string
	Status string
}

// FilterUsers is a pure query over an already-loaded collection; the
// permission check happened when the collection was obtained.
func FilterUsers(users []models.User, f UserFilter) []models.User {
	needle := strings.ToLower(f.Term)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		if f.Role != "" && f.Role != FilterAll && string(u.Role) != f.Role {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && string(u.Status) != f.Status {
			continue
		}
		out = append(out, u)
	}
	return out
}
