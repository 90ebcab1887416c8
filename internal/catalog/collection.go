package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Collection holds the loaded entries in source order together with the
// Category Universe. It is built once by NewCollection and never mutated;
// the zero value is an empty collection.
type Collection struct {
	entries  []Entry
	universe []string
	byID     map[int]int
	byName   map[string]int
}

func NewCollection(entries []Entry) (Collection, error) {
	c := Collection{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[int]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	labels := make(map[string]struct{})
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return Collection{}, err
		}
		if _, exists := c.byID[e.ID]; exists {
			return Collection{}, fmt.Errorf("%w: id %d", ErrDuplicateEntry, e.ID)
		}
		key := strings.ToLower(e.Name)
		if _, exists := c.byName[key]; exists {
			return Collection{}, fmt.Errorf("%w: name %q", ErrDuplicateEntry, e.Name)
		}

		c.byID[e.ID] = len(c.entries)
		c.byName[key] = len(c.entries)
		c.entries = append(c.entries, e.clone())

		for _, label := range e.Categories {
			labels[label] = struct{}{}
		}
	}

	c.universe = make([]string, 0, len(labels))
	for label := range labels {
		c.universe = append(c.universe, label)
	}
	sort.Strings(c.universe)

	return c, nil
}

// Entries returns the entries in source order. The slice is a copy; the
// category slices inside it are shared and must not be modified.
func (c Collection) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Universe returns the distinct category labels, sorted.
func (c Collection) Universe() []string {
	return slices.Clone(c.universe)
}

func (c Collection) InUniverse(label string) bool {
	_, found := slices.BinarySearch(c.universe, label)
	return found
}

func (c Collection) Len() int {
	return len(c.entries)
}

func (c Collection) IsEmpty() bool {
	return len(c.entries) == 0
}

func (c Collection) Get(id int) (Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return c.entries[i], nil
}

func (c Collection) GetByName(name string) (Entry, error) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return c.entries[i], nil
}

// Search returns the entries whose name contains query, ignoring case, in
// source order. An empty query returns every entry.
func (c Collection) Search(query string) []Entry {
	return Filter(c.entries, FilterOptions{Query: query})
}
