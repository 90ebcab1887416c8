package proptest

import (
	"cmp"
	"dex/internal/browse"
	"dex/internal/catalog"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertEntriesEqual(t *rapid.T, expected, actual []catalog.Entry) {
	t.Helper()
	if diff := gocmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// assertViewsEqual ignores Version, which only a Coordinator assigns.
func assertViewsEqual(t *rapid.T, invariant string, expected, actual browse.View) {
	t.Helper()
	opts := gocmp.Options{
		cmpopts.EquateEmpty(),
		cmpopts.IgnoreFields(browse.View{}, "Version"),
	}
	if diff := gocmp.Diff(expected, actual, opts); diff != "" {
		t.Fatalf("[%s] violated (-want +got):\n%s", invariant, diff)
	}
}

// assertSubsequence checks that sub appears in super in the same relative
// order. Ids identify entries.
func assertSubsequence(t *rapid.T, sub, super []catalog.Entry) {
	t.Helper()
	i := 0
	for _, e := range super {
		if i < len(sub) && sub[i].ID == e.ID {
			i++
		}
	}
	if i != len(sub) {
		t.Fatalf("[%s] violated: entry %d out of order or missing from input", invFilterSubsequence, sub[i].ID)
	}
}

func assertSameIDs(t *rapid.T, expected, actual []catalog.Entry) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("[%s] violated: length %d, want %d", invSortPermutation, len(actual), len(expected))
	}
	counts := make(map[int]int)
	for _, e := range expected {
		counts[e.ID]++
	}
	for _, e := range actual {
		counts[e.ID]--
		if counts[e.ID] < 0 {
			t.Fatalf("[%s] violated: unexpected id %d", invSortPermutation, e.ID)
		}
	}
}

// assertSortedBy compares names bytewise, which agrees with collation for
// the lowercase ASCII names the generators produce.
func assertSortedBy(t *rapid.T, entries []catalog.Entry, opts catalog.SortOptions) {
	t.Helper()
	for i := 0; i < len(entries)-1; i++ {
		a, b := entries[i], entries[i+1]
		var c int
		switch opts.Key {
		case catalog.SortByName:
			c = cmp.Compare(a.Name, b.Name)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if opts.Direction == catalog.Descending {
			c = -c
		}
		if c > 0 {
			t.Fatalf("[%s] violated: %q (#%d) before %q (#%d) under %s %s",
				invVisibleSorted, a.Name, a.ID, b.Name, b.ID, opts.Key, opts.Direction)
		}
	}
}
