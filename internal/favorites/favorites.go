// Package favorites persists the set of favorite entry ids.
package favorites

import (
	"context"
	"dex/internal/catalog"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Store interface {
	IsFavorite(id int) bool
	// Toggle flips membership of id and reports whether it is now a favorite.
	Toggle(id int) (bool, error)
	Add(id int) (bool, error)
	Remove(id int) error
	List() []int
	Save() error
	Load() error
}

// LookupFunc resolves an id the collection does not know.
type LookupFunc func(ctx context.Context, id int) (string, error)

type Named struct {
	ID   int
	Name string
}

const maxLookups = 8

// Resolve pairs each id with a name, preferring the collection and falling
// back to lookup. Ids that cannot be resolved are named "unknown-<id>".
// Order follows ids.
func Resolve(ctx context.Context, ids []int, col catalog.Collection, lookup LookupFunc) ([]Named, error) {
	out := make([]Named, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)

	for i, id := range ids {
		out[i].ID = id
		if e, err := col.Get(id); err == nil {
			out[i].Name = e.Name
			continue
		}
		if lookup == nil {
			out[i].Name = unknownName(id)
			continue
		}
		g.Go(func() error {
			name, err := lookup(ctx, id)
			if err != nil || name == "" {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				name = unknownName(id)
			}
			out[i].Name = name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func unknownName(id int) string {
	return fmt.Sprintf("unknown-%d", id)
}
