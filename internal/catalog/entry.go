package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is one creature in the collection. Entries are copied on their way
// into a Collection and must be treated as read-only afterwards.
type Entry struct {
	ID         int      `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Categories []string `yaml:"categories,omitempty" json:"categories,omitempty"`
}

func NewEntry(id int, name string, categories ...string) Entry {
	return Entry{
		ID:         id,
		Name:       name,
		Categories: slices.Clone(categories),
	}
}

func (e Entry) HasCategory(label string) bool {
	return slices.Contains(e.Categories, label)
}

func (e Entry) clone() Entry {
	c := e
	c.Categories = slices.Clone(e.Categories)
	return c
}

func (e Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidEntry, e.ID)
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: entry %d has an empty name", ErrInvalidEntry, e.ID)
	}
	return nil
}
