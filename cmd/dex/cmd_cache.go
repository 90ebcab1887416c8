package main

import (
	"errors"
	"fmt"
)

type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Delete every cached API response"`
}

type CacheClearCmd struct{}

func (cmd *CacheClearCmd) Run(g *Globals) error {
	if g.Cache == nil {
		return errors.New("response cache is disabled")
	}
	if err := g.Cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	fmt.Fprintln(g.Out, "Cache cleared.")
	return nil
}
