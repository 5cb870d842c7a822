// Package models defines the core data types for ToolDeck.
package models

// Category is an entry of the fixed directory category vocabulary.
type Category string

// Categories holds the full vocabulary, in display order.
var Categories = []Category{
	"Featured",
	"Sales",
	"Back Office",
	"Operations",
	"Growth & Marketing",
	"Writing & Editing",
	"Technology & IT",
	"Design & Creative",
	"Workflow Automation",
}

// ValidCategory reports whether c is part of the vocabulary.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Tool represents a listed directory entry. Name is the primary key.
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Link        string     `json:"link"`
	Rating      float64    `json:"rating"`
	Reviews     int        `json:"reviews"`
	Bookmarks   int        `json:"bookmarks"`
	Tags        []string   `json:"tags"`
	Categories  []Category `json:"categories"`
	Featured    bool       `json:"featured"`
}

// NewTool creates an empty draft tool ready for editing.
func NewTool() Tool {
	return Tool{
		Tags:       []string{},
		Categories: []Category{},
	}
}

// AddTag appends tag to the draft's tag list, preserving order and
// refusing duplicates.
func (t *Tool) AddTag(tag string) {
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
}

// RemoveTag removes tag from the draft's tag list if present.
func (t *Tool) RemoveTag(tag string) {
	for i, existing := range t.Tags {
		if existing == tag {
			t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
			return
		}
	}
}

// AddCategory appends c to the draft's category list, refusing duplicates.
func (t *Tool) AddCategory(c Category) {
	for _, existing := range t.Categories {
		if existing == c {
			return
		}
	}
	t.Categories = append(t.Categories, c)
}

// RemoveCategory removes c from the draft's category list if present.
func (t *Tool) RemoveCategory(c Category) {
	for i, existing := range t.Categories {
		if existing == c {
			t.Categories = append(t.Categories[:i], t.Categories[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy so callers can edit drafts without
// aliasing the store's slices.
func (t Tool) Clone() Tool {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	out.Categories = append([]Category(nil), t.Categories...)
	return out
}
