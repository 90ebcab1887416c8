package main

import (
	"context"
	"dex/cmd/dex/render"
	"dex/internal/browse"
	"dex/internal/favorites"
	"dex/internal/pokeapi"
	"io"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Source is everything the commands need from the API.
type Source interface {
	browse.Source
	FetchDetail(ctx context.Context, nameOrID string) (pokeapi.Detail, error)
	FetchName(ctx context.Context, id int) (string, error)
}

type cacheClearer interface {
	Clear() error
}

type Globals struct {
	Source Source
	Coord  *browse.Coordinator
	Favs   favorites.Store
	// Cache is nil when caching is disabled.
	Cache    cacheClearer
	Out      io.Writer
	Render   render.Renderer
	Prompt   Prompter
	Log      *zap.Logger
	PageSize int
	Rand     *rand.Rand
}

// load fetches the collection once per process.
func (g *Globals) load(ctx context.Context) error {
	if g.Coord.View().Loaded {
		return nil
	}
	return g.Coord.Load(ctx, g.Source)
}

func (g *Globals) listView(v browse.View) render.ListView {
	return render.ListView{View: v, Favorite: g.Favs.IsFavorite}
}
