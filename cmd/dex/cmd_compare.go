package main

import (
	"context"
	"dex/internal/compare"
	"dex/internal/pokeapi"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type CompareCmd struct {
	First  string `arg:"" optional:"" help:"First Pokémon name or id" completion:"dex list --names"`
	Second string `arg:"" optional:"" help:"Second Pokémon name or id" completion:"dex list --names"`
	Random bool   `short:"r" help:"Compare two random Pokémon from the collection"`
}

func (cmd *CompareCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	names, err := cmd.pick(g)
	if err != nil {
		return err
	}

	var details [2]pokeapi.Detail
	eg, ectx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			d, err := fetchDetail(ectx, g, name)
			details[i] = d
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderComparison(compare.Compare(details[0], details[1])))
	return nil
}

func (cmd *CompareCmd) pick(g *Globals) ([2]string, error) {
	if cmd.Random {
		entries := g.Coord.State().Collection.Entries()
		i, j, err := compare.RandomPair(g.Rand, len(entries))
		if err != nil {
			return [2]string{}, err
		}
		return [2]string{entries[i].Name, entries[j].Name}, nil
	}

	if cmd.First == "" || cmd.Second == "" {
		return [2]string{}, errors.New("two Pokémon are required unless --random is set")
	}
	return [2]string{cmd.First, cmd.Second}, nil
}
