package browse

import "dex/internal/catalog"

// Action is one of the transitions Reduce understands. The set is closed:
// only types in this package implement it.
type Action interface {
	action()
	String() string
}

type LoadAction struct {
	Entries []catalog.Entry
}

// loadCollectionAction loads a collection that has already been validated.
type loadCollectionAction struct {
	col catalog.Collection
}

type ToggleCategoryAction struct {
	Label string
}

type SetQueryAction struct {
	Query string
}

type ClearFiltersAction struct{}

type SetSortKeyAction struct {
	Key catalog.SortKey
}

type SetSortDirectionAction struct {
	Direction catalog.Direction
}

type SetPageAction struct {
	Page int
}

type SetPageSizeAction struct {
	Size int
}

func (LoadAction) action()             {}
func (loadCollectionAction) action()   {}
func (ToggleCategoryAction) action()   {}
func (SetQueryAction) action()         {}
func (ClearFiltersAction) action()     {}
func (SetSortKeyAction) action()       {}
func (SetSortDirectionAction) action() {}
func (SetPageAction) action()          {}
func (SetPageSizeAction) action()      {}

func (LoadAction) String() string             { return "load" }
func (loadCollectionAction) String() string   { return "load" }
func (ToggleCategoryAction) String() string   { return "toggle_category" }
func (SetQueryAction) String() string         { return "set_query" }
func (ClearFiltersAction) String() string     { return "clear_filters" }
func (SetSortKeyAction) String() string       { return "set_sort_key" }
func (SetSortDirectionAction) String() string { return "set_sort_direction" }
func (SetPageAction) String() string          { return "set_page" }
func (SetPageSizeAction) String() string      { return "set_page_size" }
