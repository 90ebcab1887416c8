package proptest

import (
	"dex/internal/browse"
	"dex/internal/catalog"
	"dex/internal/favorites"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

const (
	minEntries        = 0
	maxEntries        = 120
	typicalMinEntries = 1
	typicalMaxEntries = 60
	maxEntryID        = 1025
)

// GenEntries draws a valid collection: ids and names are unique, and names
// are lowercase ASCII so collation order matches byte order.
func GenEntries(t *rapid.T, minCount, maxCount int) []catalog.Entry {
	n := rapid.IntRange(minCount, maxCount).Draw(t, "numEntries")
	ids := rapid.SliceOfNDistinct(rapid.IntRange(1, maxEntryID), n, n, rapid.ID[int]).Draw(t, "ids")
	names := rapid.SliceOfNDistinct(nameGen, n, n, rapid.ID[string]).Draw(t, "names")

	entries := make([]catalog.Entry, n)
	for i := range entries {
		entries[i] = catalog.NewEntry(ids[i], names[i], categoriesGen().Draw(t, "categories")...)
	}
	return entries
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenEntries(minCount, maxCount int) []catalog.Entry {
	return GenEntries(h.T, minCount, maxCount)
}

type CoordinatorHarness struct {
	Harness
	Coord   *browse.Coordinator
	Entries []catalog.Entry
}

// MustLoad dispatches entries and fails the check if they are rejected.
func (h *CoordinatorHarness) MustLoad(entries []catalog.Entry) {
	if !h.Coord.Dispatch(browse.LoadAction{Entries: entries}) {
		h.T.Fatalf("load of %d generated entries was rejected", len(entries))
	}
	h.Entries = entries
}

func RunWithCoordinator(t *testing.T, fn func(h *CoordinatorHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &CoordinatorHarness{
			Harness: Harness{T: rt},
			Coord:   browse.NewCoordinator(),
		}
		harness.MustLoad(GenEntries(rt, minEntries, maxEntries))

		fn(harness)
	})
}

type FavoritesHarness struct {
	Harness
	Path  string
	Store *favorites.YAMLStore
}

// Reopen returns a fresh store loaded from the harness file.
func (h *FavoritesHarness) Reopen() *favorites.YAMLStore {
	store, err := favorites.NewYAMLStore(h.Path)
	if err != nil {
		h.T.Fatalf("failed to create store: %v", err)
	}
	if err := store.Load(); err != nil {
		h.T.Fatalf("failed to load: %v", err)
	}
	return store
}

func RunWithFavorites(t *testing.T, fn func(h *FavoritesHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir, err := os.MkdirTemp(tempDir, "iter")
		if err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		path := filepath.Join(iterDir, "favorites.yaml")
		store, err := favorites.NewYAMLStore(path)
		if err != nil {
			rt.Fatalf("failed to create store: %v", err)
		}

		fn(&FavoritesHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			Path:    path,
			Store:   store,
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir, err := os.MkdirTemp(tempDir, "iter")
		if err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		fn(&Harness{T: rt, Dir: iterDir})
	})
}
