// Package config resolves where dex keeps its files and how it reaches the API.
package config

import (
	"dex/internal/browse"
	"dex/internal/pokeapi"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	GraphQLURL    string `yaml:"graphql_url"`
	RESTURL       string `yaml:"rest_url"`
	Limit         int    `yaml:"limit"`
	PageSize      int    `yaml:"page_size"`
	CacheDir      string `yaml:"cache_dir"`
	FavoritesPath string `yaml:"favorites_path"`
}

func Default() Config {
	return Config{
		GraphQLURL:    pokeapi.DefaultGraphQLURL,
		RESTURL:       pokeapi.DefaultRESTURL,
		Limit:         pokeapi.DefaultLimit,
		PageSize:      browse.DefaultPageSize,
		CacheDir:      DefaultCacheDir(),
		FavoritesPath: DefaultFavoritesPath(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if cfg.CacheDir, err = ExpandPath(cfg.CacheDir); err != nil {
		return Config{}, err
	}
	if cfg.FavoritesPath, err = ExpandPath(cfg.FavoritesPath); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.GraphQLURL == "" || c.RESTURL == "" {
		return fmt.Errorf("%w: endpoints cannot be empty", ErrInvalidConfig)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	if !browse.ValidPageSize(c.PageSize) {
		return fmt.Errorf("%w: page_size must be one of %v, got %d", ErrInvalidConfig, browse.PageSizes(), c.PageSize)
	}
	return nil
}
