package main

import (
	"context"
	"dex/cmd/dex/render"
	"dex/internal/browse"
	"dex/internal/cache"
	"dex/internal/config"
	"dex/internal/favorites"
	"dex/internal/logging"
	"dex/internal/pokeapi"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

const (
	appName        = "dex"
	appDescription = "Browse, search and compare Pokémon from the terminal"
)

type CLI struct {
	List       ListCmd       `cmd:"" aliases:"ls" help:"List Pokémon, filtered, sorted and paged"`
	Types      TypesCmd      `cmd:"" help:"List the types in the collection"`
	Show       ShowCmd       `cmd:"" aliases:"s" help:"Show details for one Pokémon"`
	Compare    CompareCmd    `cmd:"" aliases:"vs" help:"Compare two Pokémon by base stats"`
	Fav        FavCmd        `cmd:"" aliases:"f" help:"Manage favorites"`
	Browse     BrowseCmd     `cmd:"" aliases:"b" help:"Browse the collection interactively"`
	Cache      CacheCmd      `cmd:"" help:"Manage the response cache"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	ConfigPath    string `name:"config" short:"c" env:"DEX_CONFIG" help:"Path to config file"`
	FavoritesPath string `name:"favorites" env:"DEX_FAVORITES" help:"Path to favorites file"`
	CacheDir      string `name:"cache-dir" env:"DEX_CACHE_DIR" help:"Directory for cached API responses"`
	NoCache       bool   `name:"no-cache" help:"Neither read nor write cached responses"`
	Refresh       bool   `help:"Ignore cached responses and fetch again"`
	Verbose       bool   `short:"v" help:"Enable debug logging"`

	globals *Globals
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.FavoritesPath != "" {
		cfg.FavoritesPath = c.FavoritesPath
	}
	if c.CacheDir != "" {
		cfg.CacheDir = c.CacheDir
	}

	log, err := logging.New(c.Verbose)
	if err != nil {
		return err
	}

	opts := []pokeapi.Option{
		pokeapi.WithGraphQLURL(cfg.GraphQLURL),
		pokeapi.WithRESTURL(cfg.RESTURL),
		pokeapi.WithLimit(cfg.Limit),
		pokeapi.WithRefresh(c.Refresh),
		pokeapi.WithLogger(log),
	}

	var clearer cacheClearer
	if !c.NoCache {
		disk, err := cache.NewDisk(cfg.CacheDir)
		if err != nil {
			log.Warn("response cache disabled", zap.Error(err))
		} else {
			opts = append(opts, pokeapi.WithCache(disk))
			clearer = disk
		}
	}

	favs, err := favorites.NewYAMLStore(cfg.FavoritesPath)
	if err != nil {
		return fmt.Errorf("failed to create favorites store: %w", err)
	}
	if err := favs.Load(); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	c.globals = &Globals{
		Source:   pokeapi.NewClient(opts...),
		Coord:    browse.NewCoordinator(browse.WithLogger(log)),
		Favs:     favs,
		Cache:    clearer,
		Out:      os.Stdout,
		Render:   render.NewLipglossRendererAuto(os.Stdout),
		Prompt:   newHuhPrompter(),
		Log:      log,
		PageSize: cfg.PageSize,
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	ctx.Bind(c.globals)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run()
	if cli.globals != nil {
		_ = cli.globals.Log.Sync()
	}
	kctx.FatalIfErrorf(err)
}
