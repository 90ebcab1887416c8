package browse

import (
	"dex/internal/catalog"
	"slices"
)

const DefaultPageSize = 20

var pageSizes = []int{10, 20, 50}

// PageSizes returns the page sizes SetPageSizeAction accepts.
func PageSizes() []int {
	return slices.Clone(pageSizes)
}

func ValidPageSize(n int) bool {
	return slices.Contains(pageSizes, n)
}

// State is the complete list state. Visible, TotalPages and MatchCount are
// derived from the other fields by every accepted transition.
type State struct {
	Collection  catalog.Collection
	Loaded      bool
	Filter      catalog.FilterOptions
	Sort        catalog.SortOptions
	PageSize    int
	CurrentPage int

	TotalPages int
	MatchCount int
	Visible    []catalog.Entry
}

func NewState() State {
	return derive(State{
		Sort:        catalog.DefaultSort(),
		PageSize:    DefaultPageSize,
		CurrentPage: 1,
	})
}

func (s State) clone() State {
	c := s
	c.Filter.Categories = slices.Clone(s.Filter.Categories)
	c.Visible = slices.Clone(s.Visible)
	return c
}

// derive runs filter, sort and paginate over the whole collection and
// restores the page invariant by resetting to page 1.
func derive(s State) State {
	if !ValidPageSize(s.PageSize) {
		s.PageSize = DefaultPageSize
	}
	if !s.Sort.Key.Valid() {
		s.Sort.Key = catalog.SortByID
	}
	if !s.Sort.Direction.Valid() {
		s.Sort.Direction = catalog.Ascending
	}

	matched := catalog.Sort(catalog.Filter(s.Collection.Entries(), s.Filter), s.Sort)

	s.MatchCount = len(matched)
	s.TotalPages = catalog.TotalPages(len(matched), s.PageSize)
	if s.CurrentPage < 1 || s.CurrentPage > s.TotalPages {
		s.CurrentPage = 1
	}
	s.Visible, _ = catalog.Paginate(matched, s.PageSize, s.CurrentPage)
	return s
}

// View is the read-only projection of State handed to the presentation
// layer.
type View struct {
	Visible            []catalog.Entry
	CurrentPage        int
	TotalPages         int
	PageSize           int
	SelectedCategories []string
	Query              string
	SortKey            catalog.SortKey
	SortDirection      catalog.Direction
	Universe           []string
	MatchCount         int
	Total              int
	Loaded             bool
	// Version counts accepted actions in a Coordinator; zero outside one.
	Version            uint64
}

func (s State) View() View {
	return View{
		Visible:            slices.Clone(s.Visible),
		CurrentPage:        s.CurrentPage,
		TotalPages:         s.TotalPages,
		PageSize:           s.PageSize,
		SelectedCategories: slices.Clone(s.Filter.Categories),
		Query:              s.Filter.Query,
		SortKey:            s.Sort.Key,
		SortDirection:      s.Sort.Direction,
		Universe:           s.Collection.Universe(),
		MatchCount:         s.MatchCount,
		Total:              s.Collection.Len(),
		Loaded:             s.Loaded,
	}
}

func (v View) Filtered() bool {
	return len(v.SelectedCategories) > 0 || v.Query != ""
}

func (v View) IsSelected(label string) bool {
	return slices.Contains(v.SelectedCategories, label)
}
