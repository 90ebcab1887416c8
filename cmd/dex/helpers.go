package main

import (
	"context"
	"dex/cmd/dex/render"
	"dex/internal/catalog"
	"dex/internal/pokeapi"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []catalog.Entry
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple Pokémon match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple Pokémon match. Please be more specific:")
	for _, m := range e.Matches {
		fmt.Fprintf(w, "  - %s %s\n", render.FormatID(m.ID), m.Name)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findEntry resolves query as an id, an exact name, then a unique
// substring match.
func findEntry(col catalog.Collection, query string) (catalog.Entry, error) {
	query = strings.TrimSpace(query)
	if id, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		if e, err := col.Get(id); err == nil {
			return e, nil
		}
	}
	if e, err := col.GetByName(query); err == nil {
		return e, nil
	}

	matches := col.Search(query)
	if len(matches) == 0 {
		return catalog.Entry{}, fmt.Errorf("%w: no Pokémon found matching: %s", catalog.ErrNotFound, query)
	}
	if len(matches) > 1 {
		return catalog.Entry{}, &AmbiguousMatchError{Query: query, Matches: matches}
	}
	return matches[0], nil
}

// fetchDetail resolves query against the loaded collection and fetches its
// detail. Names outside the collection are tried against the API directly.
func fetchDetail(ctx context.Context, g *Globals, query string) (pokeapi.Detail, error) {
	ident := strings.TrimPrefix(strings.TrimSpace(query), "#")

	entry, err := findEntry(g.Coord.State().Collection, query)
	switch {
	case err == nil:
		ident = entry.Name
	case !errors.Is(err, catalog.ErrNotFound):
		return pokeapi.Detail{}, err
	}

	d, fetchErr := g.Source.FetchDetail(ctx, ident)
	if errors.Is(fetchErr, pokeapi.ErrNotFound) && err != nil {
		return pokeapi.Detail{}, err
	}
	if fetchErr != nil {
		return pokeapi.Detail{}, fmt.Errorf("failed to fetch %q: %w", ident, fetchErr)
	}
	return d, nil
}
