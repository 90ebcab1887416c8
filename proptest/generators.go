package proptest

import (
	"dex/internal/browse"
	"dex/internal/catalog"
	"fmt"
	"strings"

	"pgregory.net/rapid"
)

var categoryLabels = []string{"electric", "fire", "grass", "normal", "psychic", "water"}

// unknownLabel is never drawn into an entry, so toggling it is always rejected.
const unknownLabel = "shadow"

var (
	nameGen  = rapid.StringMatching(`[a-z]{3,10}`)
	queryGen = rapid.StringMatching(`[a-zA-Z ]{0,3}`)

	sortKeyGen   = rapid.SampledFrom([]catalog.SortKey{catalog.SortByID, catalog.SortByName, "", "weight"})
	directionGen = rapid.SampledFrom([]catalog.Direction{catalog.Ascending, catalog.Descending, "", "up"})
	pageSizeGen  = rapid.SampledFrom([]int{-10, 0, 5, 10, 20, 25, 50, 100})
)

func categoriesGen() *rapid.Generator[[]string] {
	return rapid.SliceOfNDistinct(rapid.SampledFrom(categoryLabels), 0, 2, rapid.ID[string])
}

func filterOptionsGen() *rapid.Generator[catalog.FilterOptions] {
	return rapid.Custom(func(t *rapid.T) catalog.FilterOptions {
		return catalog.FilterOptions{
			Categories: categoriesGen().Draw(t, "categories"),
			Query:      queryGen.Draw(t, "query"),
		}
	})
}

func sortOptionsGen() *rapid.Generator[catalog.SortOptions] {
	return rapid.Custom(func(t *rapid.T) catalog.SortOptions {
		return catalog.SortOptions{
			Key:       rapid.SampledFrom([]catalog.SortKey{catalog.SortByID, catalog.SortByName}).Draw(t, "key"),
			Direction: rapid.SampledFrom([]catalog.Direction{catalog.Ascending, catalog.Descending}).Draw(t, "direction"),
		}
	})
}

// nameQueryGen draws either a short random query or a case-shuffled
// substring of one of names, so that searches hit as well as miss.
func nameQueryGen(names []string) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		if len(names) == 0 || rapid.Bool().Draw(t, "random") {
			return queryGen.Draw(t, "query")
		}
		name := rapid.SampledFrom(names).Draw(t, "name")
		start := rapid.IntRange(0, len(name)-1).Draw(t, "start")
		end := rapid.IntRange(start+1, len(name)).Draw(t, "end")
		q := name[start:end]
		if rapid.Bool().Draw(t, "upper") {
			q = strings.ToUpper(q)
		}
		return q
	})
}

// invalidEntriesGen draws entry lists that NewCollection must reject.
func invalidEntriesGen(valid []catalog.Entry) *rapid.Generator[[]catalog.Entry] {
	return rapid.Custom(func(t *rapid.T) []catalog.Entry {
		entries := append([]catalog.Entry(nil), valid...)
		kind := rapid.IntRange(0, 3).Draw(t, "kind")
		switch {
		case kind == 0:
			entries = append(entries, catalog.NewEntry(0, "missingno"))
		case kind == 1:
			entries = append(entries, catalog.NewEntry(rapid.IntRange(1, maxEntryID).Draw(t, "id"), "  "))
		case kind == 2 && len(valid) > 0:
			dup := rapid.SampledFrom(valid).Draw(t, "dup")
			entries = append(entries, catalog.NewEntry(dup.ID, dup.Name+"x"))
		default:
			if len(valid) == 0 {
				return []catalog.Entry{catalog.NewEntry(-1, "glitch")}
			}
			dup := rapid.SampledFrom(valid).Draw(t, "dup")
			entries = append(entries, catalog.NewEntry(maxEntryID+1, strings.ToUpper(dup.Name)))
		}
		return entries
	})
}

// actionGen draws an action suited to the model's current state. Roughly
// one draw in four is an action the reducer must reject.
func actionGen(m *listModel) *rapid.Generator[browse.Action] {
	return rapid.Custom(func(t *rapid.T) browse.Action {
		switch rapid.IntRange(0, 8).Draw(t, "actionKind") {
		case 0:
			if rapid.IntRange(0, 3).Draw(t, "invalidLoad") == 0 {
				return browse.LoadAction{Entries: invalidEntriesGen(m.entries).Draw(t, "invalid")}
			}
			return browse.LoadAction{Entries: GenEntries(t, minEntries, maxEntries)}
		case 1, 2:
			labels := append(m.universe(), unknownLabel)
			return browse.ToggleCategoryAction{Label: rapid.SampledFrom(labels).Draw(t, "label")}
		case 3:
			return browse.SetQueryAction{Query: nameQueryGen(m.names()).Draw(t, "query")}
		case 4:
			return browse.ClearFiltersAction{}
		case 5:
			return browse.SetSortKeyAction{Key: sortKeyGen.Draw(t, "key")}
		case 6:
			return browse.SetSortDirectionAction{Direction: directionGen.Draw(t, "direction")}
		case 7:
			return browse.SetPageAction{Page: rapid.IntRange(-1, m.totalPages()+2).Draw(t, "page")}
		default:
			return browse.SetPageSizeAction{Size: pageSizeGen.Draw(t, "size")}
		}
	})
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("ids: [unclosed"),
		rapid.Just("ids: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func invalidTypesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("version: \"not_a_number\"\nids: []\n"),
		rapid.Just("version: 1\nids: [pikachu, mew]\n"),
		rapid.Just("version: 1\nids: {25: true}\n"),
		rapid.Just("version: 1\nids: \"25,151\"\n"),
		rapid.Just("version: 1\nids:\n  - [25]\n"),
	)
}

// extraFieldsGen draws a favorites file holding ids 25 and 151 alongside
// an unknown field.
func extraFieldsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		extraField := rapid.SampledFrom([]string{
			"unknown_field",
			"extra",
			"foo",
			"bar_baz",
			"randomField123",
		}).Draw(t, "fieldName")
		extraValue := rapid.SampledFrom([]string{
			"string_value",
			"123",
			"true",
			"[1, 2, 3]",
			"{nested: value}",
		}).Draw(t, "fieldValue")

		return fmt.Sprintf("version: 1\n%s: %s\nids:\n  - 25\n  - 151\n", extraField, extraValue)
	})
}
