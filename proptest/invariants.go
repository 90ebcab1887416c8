package proptest

import (
	"dex/internal/browse"
	"dex/internal/catalog"
	"slices"
	"strings"

	"pgregory.net/rapid"
)

const (
	invPageInRange        = "current page lies within 1..total pages"
	invTotalPagesDerived  = "total pages is ceil(matches / page size), at least 1"
	invPageSizeAllowed    = "page size is one of the allowed sizes"
	invVisibleBounded     = "visible holds at most one page of entries"
	invInnerPagesFull     = "every page before the last is full"
	invMatchesBounded     = "match count never exceeds collection size"
	invSelectionSorted    = "selected categories are sorted and drawn from the universe"
	invVisibleMatchFilter = "every visible entry satisfies the filter"
	invVisibleSorted      = "visible entries follow the sort options"
	invFilterSubsequence  = "filter output is an in-order subsequence of its input"
	invSortPermutation    = "sort output is a permutation of its input"
	invSortStable         = "sort keeps equal keys in input order"
	invPagesConcatenate   = "pages concatenate back to the input"
	invObserverPerAccept  = "observers are notified once per accepted action"
	invObserverOrdered    = "observers see views in the order actions were applied"
	invRejectIsNoop       = "a rejected action leaves the view unchanged"
	invModelConsistent    = "coordinator view matches the reference model"
	invSaveLoadRoundTrip  = "favorites survive a save and load"
)

func verifyViewInvariants(t *rapid.T, v browse.View) {
	t.Helper()

	if v.TotalPages < 1 || v.CurrentPage < 1 || v.CurrentPage > v.TotalPages {
		t.Fatalf("[%s] violated: page %d of %d", invPageInRange, v.CurrentPage, v.TotalPages)
	}
	if want := catalog.TotalPages(v.MatchCount, v.PageSize); v.TotalPages != want {
		t.Fatalf("[%s] violated: %d matches at %d per page gave %d pages, want %d",
			invTotalPagesDerived, v.MatchCount, v.PageSize, v.TotalPages, want)
	}
	if !browse.ValidPageSize(v.PageSize) {
		t.Fatalf("[%s] violated: page size %d", invPageSizeAllowed, v.PageSize)
	}
	if len(v.Visible) > v.PageSize {
		t.Fatalf("[%s] violated: %d visible at page size %d", invVisibleBounded, len(v.Visible), v.PageSize)
	}
	if v.CurrentPage < v.TotalPages && len(v.Visible) != v.PageSize {
		t.Fatalf("[%s] violated: page %d of %d holds %d entries", invInnerPagesFull, v.CurrentPage, v.TotalPages, len(v.Visible))
	}
	if v.MatchCount > v.Total {
		t.Fatalf("[%s] violated: %d matches in %d entries", invMatchesBounded, v.MatchCount, v.Total)
	}

	if !slices.IsSorted(v.SelectedCategories) {
		t.Fatalf("[%s] violated: %v is not sorted", invSelectionSorted, v.SelectedCategories)
	}
	for _, label := range v.SelectedCategories {
		if !slices.Contains(v.Universe, label) {
			t.Fatalf("[%s] violated: %q not in universe %v", invSelectionSorted, label, v.Universe)
		}
	}

	query := strings.ToLower(v.Query)
	for _, e := range v.Visible {
		if len(v.SelectedCategories) > 0 && !slices.ContainsFunc(v.SelectedCategories, e.HasCategory) {
			t.Fatalf("[%s] violated: %q has none of %v", invVisibleMatchFilter, e.Name, v.SelectedCategories)
		}
		if !strings.Contains(strings.ToLower(e.Name), query) {
			t.Fatalf("[%s] violated: %q does not contain %q", invVisibleMatchFilter, e.Name, v.Query)
		}
	}

	assertSortedBy(t, v.Visible, catalog.SortOptions{Key: v.SortKey, Direction: v.SortDirection})
}
