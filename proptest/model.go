package proptest

import (
	"dex/internal/browse"
	"dex/internal/catalog"
	"sort"
	"strings"
)

// listModel is a deliberately naive list state: it recomputes everything
// from scratch with plain loops and shares no code with the reducer.
type listModel struct {
	entries  []catalog.Entry
	loaded   bool
	selected map[string]bool
	query    string
	key      catalog.SortKey
	dir      catalog.Direction
	pageSize int
	page     int
}

func newListModel() *listModel {
	return &listModel{
		selected: map[string]bool{},
		key:      catalog.SortByID,
		dir:      catalog.Ascending,
		pageSize: browse.DefaultPageSize,
		page:     1,
	}
}

func (m *listModel) universe() []string {
	seen := map[string]bool{}
	var labels []string
	for _, e := range m.entries {
		for _, c := range e.Categories {
			if !seen[c] {
				seen[c] = true
				labels = append(labels, c)
			}
		}
	}
	sort.Strings(labels)
	return labels
}

func (m *listModel) names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	return names
}

func (m *listModel) selectedLabels() []string {
	var labels []string
	for label := range m.selected {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (m *listModel) matches() []catalog.Entry {
	var out []catalog.Entry
	q := strings.ToLower(m.query)
	for _, e := range m.entries {
		if len(m.selected) > 0 {
			hit := false
			for _, c := range e.Categories {
				if m.selected[c] {
					hit = true
				}
			}
			if !hit {
				continue
			}
		}
		if !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		out = append(out, e)
	}

	less := func(a, b catalog.Entry) bool { return a.ID < b.ID }
	if m.key == catalog.SortByName {
		less = func(a, b catalog.Entry) bool { return a.Name < b.Name }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if m.dir == catalog.Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func (m *listModel) totalPages() int {
	n := len(m.matches())
	if n == 0 {
		return 1
	}
	return (n + m.pageSize - 1) / m.pageSize
}

func (m *listModel) visible() []catalog.Entry {
	all := m.matches()
	var out []catalog.Entry
	for i := (m.page - 1) * m.pageSize; i < len(all) && i < m.page*m.pageSize; i++ {
		out = append(out, all[i])
	}
	return out
}

func validEntries(entries []catalog.Entry) bool {
	ids := map[int]bool{}
	names := map[string]bool{}
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if e.ID <= 0 || strings.TrimSpace(e.Name) == "" || ids[e.ID] || names[name] {
			return false
		}
		ids[e.ID] = true
		names[name] = true
	}
	return true
}

// apply mirrors the reducer's acceptance rules and reports whether a was
// accepted.
func (m *listModel) apply(a browse.Action) bool {
	switch a := a.(type) {
	case browse.LoadAction:
		if !validEntries(a.Entries) {
			return false
		}
		*m = *newListModel()
		m.entries = a.Entries
		m.loaded = true

	case browse.ToggleCategoryAction:
		found := false
		for _, label := range m.universe() {
			if label == a.Label {
				found = true
			}
		}
		if !found {
			return false
		}
		if m.selected[a.Label] {
			delete(m.selected, a.Label)
		} else {
			m.selected[a.Label] = true
		}
		m.page = 1

	case browse.SetQueryAction:
		m.query = a.Query
		m.page = 1

	case browse.ClearFiltersAction:
		m.selected = map[string]bool{}
		m.query = ""
		m.page = 1

	case browse.SetSortKeyAction:
		if a.Key != catalog.SortByID && a.Key != catalog.SortByName {
			return false
		}
		m.key = a.Key

	case browse.SetSortDirectionAction:
		if a.Direction != catalog.Ascending && a.Direction != catalog.Descending {
			return false
		}
		m.dir = a.Direction

	case browse.SetPageAction:
		if a.Page < 1 || a.Page > m.totalPages() {
			return false
		}
		m.page = a.Page

	case browse.SetPageSizeAction:
		if a.Size != 10 && a.Size != 20 && a.Size != 50 {
			return false
		}
		m.pageSize = a.Size
		m.page = 1

	default:
		return false
	}
	return true
}

func (m *listModel) view() browse.View {
	return browse.View{
		Visible:            m.visible(),
		CurrentPage:        m.page,
		TotalPages:         m.totalPages(),
		PageSize:           m.pageSize,
		SelectedCategories: m.selectedLabels(),
		Query:              m.query,
		SortKey:            m.key,
		SortDirection:      m.dir,
		Universe:           m.universe(),
		MatchCount:         len(m.matches()),
		Total:              len(m.entries),
		Loaded:             m.loaded,
	}
}
