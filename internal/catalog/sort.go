package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a sorted copy of entries. The sort is stable in both
// directions: entries with equal keys keep their input order. Unknown keys
// and directions fall back to DefaultSort.
func Sort(entries []Entry, opts SortOptions) []Entry {
	if !opts.Key.Valid() {
		opts.Key = SortByID
	}
	descending := opts.Direction == Descending

	sorted := slices.Clone(entries)
	compare := compareFunc(opts.Key)

	slices.SortStableFunc(sorted, func(a, b Entry) int {
		c := compare(a, b)
		if descending {
			return -c
		}
		return c
	})
	return sorted
}

func compareFunc(key SortKey) func(a, b Entry) int {
	switch key {
	case SortByName:
		// Collators keep scratch buffers, so each sort gets its own.
		col := collate.New(language.English)
		return func(a, b Entry) int {
			return col.CompareString(a.Name, b.Name)
		}
	default:
		return func(a, b Entry) int {
			return cmp.Compare(a.ID, b.ID)
		}
	}
}
