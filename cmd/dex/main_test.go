package main

import (
	"bytes"
	"context"
	"dex/cmd/dex/render"
	"dex/internal/browse"
	"dex/internal/catalog"
	"dex/internal/compare"
	"dex/internal/favorites"
	"dex/internal/pokeapi"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSource struct {
	entries     []catalog.Entry
	details     map[string]pokeapi.Detail
	fetchErr    error
	detailCalls atomic.Int32
}

func newFakeSource() *fakeSource {
	entries := []catalog.Entry{
		catalog.NewEntry(1, "bulbasaur", "grass", "poison"),
		catalog.NewEntry(4, "charmander", "fire"),
		catalog.NewEntry(5, "charmeleon", "fire"),
		catalog.NewEntry(6, "charizard", "fire", "flying"),
		catalog.NewEntry(7, "squirtle", "water"),
		catalog.NewEntry(25, "pikachu", "electric"),
	}
	for i := range 20 {
		entries = append(entries, catalog.NewEntry(100+i, fmt.Sprintf("mon-%02d", i), "normal"))
	}

	pikachu := pokeapi.Detail{
		ID:             25,
		Name:           "pikachu",
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		Types:          []string{"electric"},
		Abilities:      []pokeapi.Ability{{Name: "static"}, {Name: "lightning-rod", Hidden: true}},
		Stats: []pokeapi.Stat{
			{Name: "hp", Base: 35},
			{Name: "attack", Base: 55},
			{Name: "speed", Base: 90},
		},
		Description: "When several of these POKéMON gather, their electricity could build and cause lightning storms.",
	}
	mew := pokeapi.Detail{
		ID:    151,
		Name:  "mew",
		Types: []string{"psychic"},
		Stats: []pokeapi.Stat{{Name: "hp", Base: 100}, {Name: "attack", Base: 100}, {Name: "speed", Base: 100}},
	}
	charizard := pokeapi.Detail{
		ID:    6,
		Name:  "charizard",
		Types: []string{"fire", "flying"},
		Stats: []pokeapi.Stat{{Name: "hp", Base: 78}, {Name: "attack", Base: 84}},
	}

	return &fakeSource{
		entries: entries,
		details: map[string]pokeapi.Detail{
			"pikachu": pikachu, "25": pikachu,
			"mew": mew, "151": mew,
			"charizard": charizard, "6": charizard,
		},
	}
}

func (f *fakeSource) FetchCollection(context.Context) ([]catalog.Entry, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.entries, nil
}

func (f *fakeSource) FetchDetail(_ context.Context, nameOrID string) (pokeapi.Detail, error) {
	f.detailCalls.Add(1)
	nameOrID = strings.ToLower(strings.TrimSpace(nameOrID))
	if d, ok := f.details[nameOrID]; ok {
		return d, nil
	}
	for _, e := range f.entries {
		if e.Name == nameOrID || strconv.Itoa(e.ID) == nameOrID {
			return pokeapi.Detail{ID: e.ID, Name: e.Name, Types: e.Categories,
				Stats: []pokeapi.Stat{{Name: "hp", Base: 40 + e.ID%50}}}, nil
		}
	}
	return pokeapi.Detail{}, fmt.Errorf("pokemon %q: %w", nameOrID, pokeapi.ErrNotFound)
}

func (f *fakeSource) FetchName(ctx context.Context, id int) (string, error) {
	d, err := f.FetchDetail(ctx, strconv.Itoa(id))
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

type scriptedPrompter struct {
	actions []browse.Action
	seen    []browse.View
}

func (p *scriptedPrompter) NextAction(v browse.View) (browse.Action, error) {
	p.seen = append(p.seen, v)
	if len(p.actions) == 0 {
		return nil, errQuit
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

type fakeCache struct {
	cleared bool
	err     error
}

func (c *fakeCache) Clear() error {
	c.cleared = true
	return c.err
}

func newTestGlobals(t *testing.T) (*Globals, *bytes.Buffer) {
	t.Helper()
	g, buf, _ := newTestGlobalsCore(t)
	return g, buf
}

func newTestGlobalsCore(t *testing.T) (*Globals, *bytes.Buffer, *fakeSource) {
	t.Helper()
	favs, err := favorites.NewYAMLStore(filepath.Join(t.TempDir(), "favorites.yaml"))
	require.NoError(t, err)
	log := zaptest.NewLogger(t)
	src := newFakeSource()
	buf := &bytes.Buffer{}
	return &Globals{
		Source:   src,
		Coord:    browse.NewCoordinator(browse.WithLogger(log)),
		Favs:     favs,
		Out:      buf,
		Render:   render.NewLipglossRenderer(buf, 80),
		Prompt:   &scriptedPrompter{},
		Log:      log,
		PageSize: browse.DefaultPageSize,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	}, buf, src
}

func TestListCmd_Run(t *testing.T) {
	t.Run("first page in id order", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ListCmd{Sort: "id", Page: 1}
		err := cmd.Run(context.Background(), g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "#001  Bulbasaur")
		assert.Contains(t, output, "Showing 26 of 26 Pokémon")
		assert.Contains(t, output, "« ‹ [1] 2 › »  Page 1 of 2")
		assert.NotContains(t, output, "Mon-19")
	})

	t.Run("filters by several types", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ListCmd{Types: []string{"water", "Electric"}, Sort: "id", Page: 1}
		err := cmd.Run(context.Background(), g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Squirtle")
		assert.Contains(t, output, "Pikachu")
		assert.Contains(t, output, "Showing 2 of 26 Pokémon filtered by type: electric, water")
	})

	t.Run("repeated type flag does not toggle it off", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := ListCmd{Types: []string{"fire", "fire"}, Sort: "id", Page: 1}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Equal(t, []string{"fire"}, g.Coord.View().SelectedCategories)
	})

	t.Run("unknown type is an error", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := ListCmd{Types: []string{"dragon"}, Sort: "id", Page: 1}
		err := cmd.Run(context.Background(), g)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown type "dragon"`)
	})

	t.Run("query narrows by name", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ListCmd{Query: "CHAR", Sort: "id", Page: 1}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), `Showing 3 of 26 Pokémon matching "CHAR"`)
	})

	t.Run("page out of range is an error", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := ListCmd{Sort: "id", Page: 3}
		err := cmd.Run(context.Background(), g)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "page 3 out of range (1-2)")
	})

	t.Run("per-page outside the allowed sizes is an error", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := ListCmd{Sort: "id", Page: 1, PerPage: 15}
		err := cmd.Run(context.Background(), g)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "page size must be one of [10 20 50]")
	})

	t.Run("per-page then page", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := ListCmd{Sort: "id", Page: 3, PerPage: 10}
		require.NoError(t, cmd.Run(context.Background(), g))

		v := g.Coord.View()
		assert.Equal(t, 3, v.CurrentPage)
		assert.Equal(t, 3, v.TotalPages)
		assert.Len(t, v.Visible, 6)
	})

	t.Run("configured page size is the default", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		g.PageSize = 50

		cmd := ListCmd{Sort: "id", Page: 1}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Equal(t, 50, g.Coord.View().PageSize)
	})

	t.Run("names prints every match sorted", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ListCmd{Types: []string{"fire"}, Sort: "name", Desc: true, Page: 1, Names: true}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Equal(t, "charmeleon\ncharmander\ncharizard\n", out.String())
	})

	t.Run("json output", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ListCmd{Sort: "id", Page: 2, PerPage: 10, JSON: true}
		require.NoError(t, cmd.Run(context.Background(), g))

		var got listJSON
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 3, got.TotalPages)
		assert.Equal(t, 10, got.PageSize)
		assert.Equal(t, 26, got.Total)
		require.Len(t, got.Items, 10)
		assert.Equal(t, 104, got.Items[0].ID)
	})

	t.Run("load failure is returned", func(t *testing.T) {
		g, _, src := newTestGlobalsCore(t)
		src.fetchErr = errors.New("network down")

		cmd := ListCmd{Sort: "id", Page: 1}
		err := cmd.Run(context.Background(), g)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "network down")
	})
}

func TestListCmd_GoldenOutput(t *testing.T) {
	t.Run("fire types", func(t *testing.T) {
		g, out := newTestGlobals(t)
		_, err := g.Favs.Add(6)
		require.NoError(t, err)

		cmd := ListCmd{Types: []string{"fire"}, Sort: "id", Page: 1}
		require.NoError(t, cmd.Run(context.Background(), g))

		golden.RequireEqual(t, out.Bytes())
	})
}

func TestTypesCmd_Run(t *testing.T) {
	g, out := newTestGlobals(t)

	cmd := TypesCmd{}
	require.NoError(t, cmd.Run(context.Background(), g))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "electric    1", lines[0])
	assert.Equal(t, "fire        3", lines[1])
	assert.Equal(t, "normal     20", lines[4])
}

func TestShowCmd_Run(t *testing.T) {
	t.Run("renders detail", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ShowCmd{Name: "pikachu"}
		require.NoError(t, cmd.Run(context.Background(), g))

		golden.RequireEqual(t, out.Bytes())
	})

	t.Run("id and unique substring resolve", func(t *testing.T) {
		for _, query := range []string{"25", "#25", "pika"} {
			g, out := newTestGlobals(t)

			cmd := ShowCmd{Name: query}
			require.NoError(t, cmd.Run(context.Background(), g))

			assert.Contains(t, out.String(), "#025 Pikachu", "query %q", query)
		}
	})

	t.Run("favorite is starred", func(t *testing.T) {
		g, out := newTestGlobals(t)
		_, err := g.Favs.Add(25)
		require.NoError(t, err)

		cmd := ShowCmd{Name: "pikachu"}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), "#025 Pikachu ★")
	})

	t.Run("outside the collection falls back to the API", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ShowCmd{Name: "mew"}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), "#151 Mew")
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := ShowCmd{Name: "agumon"}
		err := cmd.Run(context.Background(), g)

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("ambiguous match lists candidates", func(t *testing.T) {
		g, out, src := newTestGlobalsCore(t)

		cmd := ShowCmd{Name: "char"}
		err := cmd.Run(context.Background(), g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Multiple Pokémon match")
		assert.Contains(t, output, "#004 charmander")
		assert.Contains(t, output, "#006 charizard")
		assert.Zero(t, src.detailCalls.Load())
	})

	t.Run("works when the collection cannot load", func(t *testing.T) {
		g, out, src := newTestGlobalsCore(t)
		src.fetchErr = errors.New("graphql down")

		cmd := ShowCmd{Name: "Pikachu"}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), "#025 Pikachu")
	})
}

func TestFindEntry(t *testing.T) {
	col, err := catalog.NewCollection(newFakeSource().entries)
	require.NoError(t, err)

	t.Run("exact name wins over substring", func(t *testing.T) {
		e, err := findEntry(col, "charmander")

		require.NoError(t, err)
		assert.Equal(t, 4, e.ID)
	})

	t.Run("ambiguous returns all matches", func(t *testing.T) {
		_, err := findEntry(col, "mon-1")

		var ambErr *AmbiguousMatchError
		require.ErrorAs(t, err, &ambErr)
		assert.Len(t, ambErr.Matches, 10)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := findEntry(col, "zzz")

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestCompareCmd_Run(t *testing.T) {
	t.Run("compares two named Pokémon", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompareCmd{First: "pikachu", Second: "mew"}
		require.NoError(t, cmd.Run(context.Background(), g))

		output := out.String()
		assert.Contains(t, output, "Pikachu vs Mew")
		assert.Contains(t, output, "mew has stronger overall stats by 120 points!")
	})

	t.Run("evenly matched", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompareCmd{First: "charizard", Second: "pikachu"}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), "charizard and pikachu are fairly evenly matched!")
	})

	t.Run("random picks two different entries", func(t *testing.T) {
		g, out, src := newTestGlobalsCore(t)

		cmd := CompareCmd{Random: true}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), " vs ")
		assert.Equal(t, int32(2), src.detailCalls.Load())
	})

	t.Run("random with too few entries", func(t *testing.T) {
		g, _, src := newTestGlobalsCore(t)
		src.entries = src.entries[:1]

		cmd := CompareCmd{Random: true}
		err := cmd.Run(context.Background(), g)

		assert.ErrorIs(t, err, compare.ErrTooFewEntries)
	})

	t.Run("needs two names without random", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := CompareCmd{First: "pikachu"}
		err := cmd.Run(context.Background(), g)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "two Pokémon are required")
	})

	t.Run("unknown side fails the comparison", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := CompareCmd{First: "pikachu", Second: "agumon"}
		err := cmd.Run(context.Background(), g)

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestFavCmd_Run(t *testing.T) {
	t.Run("toggle adds and persists", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := FavToggleCmd{Name: "pikachu"}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), "Added to favorites")
		assert.Contains(t, out.String(), "#025 Pikachu")
		require.NoError(t, g.Favs.Load())
		assert.Equal(t, []int{25}, g.Favs.List())
	})

	t.Run("toggle twice removes", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := FavToggleCmd{Name: "25"}
		require.NoError(t, cmd.Run(context.Background(), g))
		out.Reset()
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Contains(t, out.String(), "Removed from favorites")
		assert.False(t, g.Favs.IsFavorite(25))
	})

	t.Run("toggle outside the collection uses the API id", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := FavToggleCmd{Name: "mew"}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.True(t, g.Favs.IsFavorite(151))
	})

	t.Run("list resolves names with fallbacks", func(t *testing.T) {
		g, out := newTestGlobals(t)
		for _, id := range []int{6, 151, 9999} {
			_, err := g.Favs.Add(id)
			require.NoError(t, err)
		}

		cmd := FavListCmd{}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Equal(t, "★ #006  Charizard\n★ #151  Mew\n★ #9999  Unknown-9999\n", out.String())
	})

	t.Run("list names only", func(t *testing.T) {
		g, out := newTestGlobals(t)
		_, err := g.Favs.Add(25)
		require.NoError(t, err)

		cmd := FavListCmd{Names: true}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Equal(t, "pikachu\n", out.String())
	})

	t.Run("empty list", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := FavListCmd{}
		require.NoError(t, cmd.Run(context.Background(), g))

		assert.Equal(t, "No favorites yet.\n", out.String())
	})
}

func TestBrowseCmd_Run(t *testing.T) {
	t.Run("dispatches prompted actions until quit", func(t *testing.T) {
		g, out := newTestGlobals(t)
		prompt := &scriptedPrompter{actions: []browse.Action{
			browse.ToggleCategoryAction{Label: "fire"},
			browse.SetSortKeyAction{Key: catalog.SortByName},
			browse.SetPageAction{Page: 5},
		}}
		g.Prompt = prompt

		cmd := BrowseCmd{}
		require.NoError(t, cmd.Run(context.Background(), g))

		output := out.String()
		assert.Contains(t, output, "┌ Pokédex")
		assert.Contains(t, output, "◇ Types · fire")
		assert.Contains(t, output, "◇ Sort · name asc")
		assert.Contains(t, output, "Nothing to do for set_page.")
		require.Len(t, prompt.seen, 4)
		assert.Equal(t, []string{"charizard", "charmander", "charmeleon"}, names(prompt.seen[3].Visible))
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		prompt := &scriptedPrompter{actions: []browse.Action{browse.ClearFiltersAction{}}}
		g.Prompt = prompt
		require.NoError(t, g.load(context.Background()))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cmd := BrowseCmd{}
		require.NoError(t, cmd.Run(ctx, g))

		assert.Empty(t, prompt.seen)
	})
}

func names(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestMenuChoices(t *testing.T) {
	t.Run("single unfiltered page", func(t *testing.T) {
		got := menuChoices(browse.View{CurrentPage: 1, TotalPages: 1})

		assert.Equal(t, []menuChoice{choiceType, choiceSearch, choiceSort, choiceDirection, choicePageSize, choiceQuit}, got)
	})

	t.Run("middle page with filters", func(t *testing.T) {
		got := menuChoices(browse.View{CurrentPage: 2, TotalPages: 3, Query: "a"})

		assert.Contains(t, got, choiceNext)
		assert.Contains(t, got, choicePrev)
		assert.Contains(t, got, choiceGoto)
		assert.Contains(t, got, choiceClear)
	})
}

func TestActionFor(t *testing.T) {
	v := browse.View{CurrentPage: 2, TotalPages: 3}

	tests := []struct {
		choice menuChoice
		input  string
		want   browse.Action
	}{
		{choiceType, "fire", browse.ToggleCategoryAction{Label: "fire"}},
		{choiceSearch, "pika", browse.SetQueryAction{Query: "pika"}},
		{choiceSort, "name", browse.SetSortKeyAction{Key: catalog.SortByName}},
		{choiceDirection, "desc", browse.SetSortDirectionAction{Direction: catalog.Descending}},
		{choiceNext, "", browse.SetPageAction{Page: 3}},
		{choicePrev, "", browse.SetPageAction{Page: 1}},
		{choiceGoto, " 3 ", browse.SetPageAction{Page: 3}},
		{choicePageSize, "50", browse.SetPageSizeAction{Size: 50}},
		{choiceClear, "", browse.ClearFiltersAction{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.choice), func(t *testing.T) {
			got, err := actionFor(tt.choice, v, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("quit", func(t *testing.T) {
		_, err := actionFor(choiceQuit, v, "")

		assert.ErrorIs(t, err, errQuit)
	})

	t.Run("bad page number", func(t *testing.T) {
		_, err := actionFor(choiceGoto, v, "two")

		assert.Error(t, err)
	})
}

func TestCacheClearCmd_Run(t *testing.T) {
	t.Run("clears the cache", func(t *testing.T) {
		g, out := newTestGlobals(t)
		c := &fakeCache{}
		g.Cache = c

		cmd := CacheClearCmd{}
		require.NoError(t, cmd.Run(g))

		assert.True(t, c.cleared)
		assert.Equal(t, "Cache cleared.\n", out.String())
	})

	t.Run("disabled cache is an error", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := CacheClearCmd{}
		err := cmd.Run(g)

		assert.EqualError(t, err, "response cache is disabled")
	})
}

func TestCompletionCmd_Run(t *testing.T) {
	t.Run("bash", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompletionCmd{Shell: "bash"}
		require.NoError(t, cmd.Run(g))

		output := out.String()
		assert.Contains(t, output, "complete -F _dex dex")
		assert.Contains(t, output, "list|ls)")
		assert.Contains(t, output, "--per-page")
		assert.Contains(t, output, "$(dex list --names 2>/dev/null)")
	})

	t.Run("zsh wraps bash completion", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompletionCmd{Shell: "zsh"}
		require.NoError(t, cmd.Run(g))

		assert.True(t, strings.HasPrefix(out.String(), "#compdef dex\n"))
		assert.Contains(t, out.String(), "bashcompinit")
	})

	t.Run("fish", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompletionCmd{Shell: "fish"}
		require.NoError(t, cmd.Run(g))

		output := out.String()
		assert.Contains(t, output, "complete -c dex -n __fish_use_subcommand -a compare")
		assert.Contains(t, output, "'__fish_seen_subcommand_from fav f' -a toggle")
	})
}

// isolateXDG keeps parser tests away from the user's real files.
func isolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestGlobalFlagParsing(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	favPath := filepath.Join(dir, "favs.yaml")

	testCases := []struct {
		name string
		args []string
	}{
		{name: "long flags with space", args: []string{"--favorites", favPath, "--cache-dir", dir, "types"}},
		{name: "long flags with equals", args: []string{"--favorites=" + favPath, "--cache-dir=" + dir, "types"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cli := CLI{}
			_, err := newTestParser(t, &cli).Parse(tc.args)

			require.NoError(t, err)
			assert.Equal(t, favPath, cli.FavoritesPath)
			assert.Equal(t, dir, cli.CacheDir)
			require.NotNil(t, cli.globals)
			assert.NotNil(t, cli.globals.Cache)
		})
	}

	t.Run("env vars", func(t *testing.T) {
		t.Setenv("DEX_FAVORITES", favPath)

		cli := CLI{}
		_, err := newTestParser(t, &cli).Parse([]string{"--no-cache", "types"})

		require.NoError(t, err)
		assert.Equal(t, favPath, cli.FavoritesPath)
		require.NotNil(t, cli.globals)
		assert.Nil(t, cli.globals.Cache)
	})

	t.Run("invalid config file fails", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("page_size: 7\n"), 0o644))

		cli := CLI{}
		_, err := newTestParser(t, &cli).Parse([]string{"--config", cfgPath, "--no-cache", "types"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}

func TestKongAliases(t *testing.T) {
	isolateXDG(t)

	testCases := []struct {
		alias   string
		command string
	}{
		{"ls", "list"},
		{"s", "show"},
		{"vs", "compare"},
		{"f", "fav"},
		{"b", "browse"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s is alias for %s", tc.alias, tc.command), func(t *testing.T) {
			cli := CLI{}
			parser := newTestParser(t, &cli)

			require.NotPanics(t, func() {
				_, _ = parser.Parse([]string{tc.alias, "--help"})
			})
		})
	}
}
