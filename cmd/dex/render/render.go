package render

import (
	"dex/internal/browse"
	"dex/internal/compare"
	"dex/internal/favorites"
	"dex/internal/pokeapi"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PagerWidth is how many page numbers the pager shows at once.
const PagerWidth = 5

type Renderer interface {
	RenderList(view ListView) string
	RenderTypes(counts []TypeCount) string
	RenderDetail(view DetailView) string
	RenderComparison(res compare.Result) string
	RenderFavorites(items []favorites.Named) string
}

type ListView struct {
	browse.View
	Favorite func(id int) bool
}

func (v ListView) IsEmpty() bool {
	return len(v.Visible) == 0
}

func (v ListView) isFavorite(id int) bool {
	return v.Favorite != nil && v.Favorite(id)
}

type DetailView struct {
	pokeapi.Detail
	Favorite bool
}

type TypeCount struct {
	Label string
	Count int
}

// DisplayName title-cases an API name, e.g. "mr-mime" becomes "Mr-Mime".
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// Summary describes how many entries match and which filters are active.
func Summary(v browse.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d Pokémon", v.MatchCount, v.Total)
	if len(v.SelectedCategories) > 0 {
		b.WriteString(" filtered by type: ")
		b.WriteString(strings.Join(v.SelectedCategories, ", "))
	}
	if v.Query != "" {
		fmt.Fprintf(&b, " matching %q", v.Query)
	}
	return b.String()
}

// Pager renders the page navigation line, or "" for a single page.
func Pager(v browse.View) string {
	if v.TotalPages <= 1 {
		return ""
	}

	parts := []string{"«", "‹"}
	for _, p := range browse.PageWindow(v.CurrentPage, v.TotalPages, PagerWidth) {
		label := strconv.Itoa(p)
		if p == v.CurrentPage {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	parts = append(parts, "›", "»")

	return fmt.Sprintf("%s  Page %d of %d", strings.Join(parts, " "), v.CurrentPage, v.TotalPages)
}
