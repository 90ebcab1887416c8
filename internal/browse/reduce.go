package browse

import (
	"dex/internal/catalog"
	"slices"
)

// Reduce applies a to s and returns the resulting state. The bool reports
// whether the action was accepted; a rejected action returns s unchanged.
// Reduce never modifies s.
func Reduce(s State, a Action) (State, bool) {
	next := s.clone()

	switch a := a.(type) {
	case LoadAction:
		col, err := catalog.NewCollection(a.Entries)
		if err != nil {
			return s, false
		}
		next = loadedState(col)

	case loadCollectionAction:
		next = loadedState(a.col)

	case ToggleCategoryAction:
		if !s.Collection.InUniverse(a.Label) {
			return s, false
		}
		next.Filter.Categories = toggle(next.Filter.Categories, a.Label)
		next.CurrentPage = 1

	case SetQueryAction:
		next.Filter.Query = a.Query
		next.CurrentPage = 1

	case ClearFiltersAction:
		next.Filter = catalog.FilterOptions{}
		next.CurrentPage = 1

	case SetSortKeyAction:
		if !a.Key.Valid() {
			return s, false
		}
		next.Sort.Key = a.Key

	case SetSortDirectionAction:
		if !a.Direction.Valid() {
			return s, false
		}
		next.Sort.Direction = a.Direction

	case SetPageAction:
		if a.Page < 1 || a.Page > s.TotalPages {
			return s, false
		}
		next.CurrentPage = a.Page

	case SetPageSizeAction:
		if !ValidPageSize(a.Size) {
			return s, false
		}
		next.PageSize = a.Size
		next.CurrentPage = 1

	default:
		return s, false
	}

	return derive(next), true
}

// loadedState is the state right after col is loaded: no filter, default
// sort and page size, first page.
func loadedState(col catalog.Collection) State {
	return State{
		Collection:  col,
		Loaded:      true,
		Sort:        catalog.DefaultSort(),
		PageSize:    DefaultPageSize,
		CurrentPage: 1,
	}
}

// toggle adds or removes label, keeping the result sorted.
func toggle(labels []string, label string) []string {
	if i := slices.Index(labels, label); i >= 0 {
		return slices.Delete(labels, i, i+1)
	}
	labels = append(labels, label)
	slices.Sort(labels)
	return labels
}
