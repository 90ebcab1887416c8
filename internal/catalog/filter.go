package catalog

import (
	"slices"
	"strings"
)

// Filter returns the entries matching opts, in input order. Within
// opts.Categories membership is OR; the category and query predicates are
// ANDed. The input slice is never modified.
func Filter(entries []Entry, opts FilterOptions) []Entry {
	query := strings.ToLower(opts.Query)

	results := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if matchesFilter(e, opts.Categories, query) {
			results = append(results, e)
		}
	}
	return results
}

func matchesFilter(e Entry, categories []string, query string) bool {
	if len(categories) > 0 && !slices.ContainsFunc(categories, e.HasCategory) {
		return false
	}

	if query != "" && !matchesQuery(e, query) {
		return false
	}

	return true
}

// query must already be lowercased.
func matchesQuery(e Entry, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query)
}
