package main

import (
	"context"
	"dex/cmd/dex/render"
	"fmt"

	"go.uber.org/zap"
)

type ShowCmd struct {
	Name string `arg:"" help:"Pokémon name or id" completion:"dex list --names"`
}

func (cmd *ShowCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		g.Log.Warn("collection unavailable, asking the API directly", zap.Error(err))
	}

	d, err := fetchDetail(ctx, g, cmd.Name)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderDetail(render.DetailView{
		Detail:   d,
		Favorite: g.Favs.IsFavorite(d.ID),
	}))
	return nil
}
