package main

import (
	"context"
	"dex/cmd/dex/render"
	"fmt"
)

type TypesCmd struct{}

func (cmd *TypesCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	col := g.Coord.State().Collection
	counts := make(map[string]int)
	for _, e := range col.Entries() {
		for _, c := range e.Categories {
			counts[c]++
		}
	}

	var out []render.TypeCount
	for _, label := range col.Universe() {
		out = append(out, render.TypeCount{Label: label, Count: counts[label]})
	}

	fmt.Fprint(g.Out, g.Render.RenderTypes(out))
	return nil
}
