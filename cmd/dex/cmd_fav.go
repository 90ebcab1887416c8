package main

import (
	"context"
	"dex/cmd/dex/render"
	"dex/internal/favorites"
	"dex/internal/ui"
	"fmt"

	"go.uber.org/zap"
)

type FavCmd struct {
	List   FavListCmd   `cmd:"" default:"1" aliases:"ls" help:"List favorites"`
	Toggle FavToggleCmd `cmd:"" aliases:"t" help:"Add or remove a favorite"`
}

type FavToggleCmd struct {
	Name string `arg:"" help:"Pokémon name or id" completion:"dex list --names"`
}

func (cmd *FavToggleCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		g.Log.Warn("collection unavailable, asking the API directly", zap.Error(err))
	}

	id, name, err := cmd.resolve(ctx, g)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	on, err := g.Favs.Toggle(id)
	if err != nil {
		return fmt.Errorf("failed to toggle favorite %q: %w", name, err)
	}
	if err := g.Favs.Save(); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}

	headline := "Removed from favorites"
	if on {
		headline = "Added to favorites"
	}
	fmt.Fprint(g.Out, ui.RenderNotice(headline, render.FormatID(id)+" "+render.DisplayName(name), nil))
	return nil
}

// resolve prefers the collection so toggling works without a detail fetch.
func (cmd *FavToggleCmd) resolve(ctx context.Context, g *Globals) (int, string, error) {
	if e, err := findEntry(g.Coord.State().Collection, cmd.Name); err == nil {
		return e.ID, e.Name, nil
	}
	d, err := fetchDetail(ctx, g, cmd.Name)
	if err != nil {
		return 0, "", err
	}
	return d.ID, d.Name, nil
}

type FavListCmd struct {
	Names bool `short:"n" help:"Output only names (one per line)"`
}

func (cmd *FavListCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		g.Log.Warn("collection unavailable, resolving names through the API", zap.Error(err))
	}

	items, err := favorites.Resolve(ctx, g.Favs.List(), g.Coord.State().Collection, g.Source.FetchName)
	if err != nil {
		return err
	}

	if cmd.Names {
		for _, it := range items {
			fmt.Fprintln(g.Out, it.Name)
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderFavorites(items))
	return nil
}
