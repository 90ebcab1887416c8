package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "dex"

// xdgHome returns $env, or ~/<fallback...> when it is unset.
func xdgHome(env string, fallback ...string) string {
	dir := os.Getenv(env)
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(append([]string{home}, fallback...)...)
	}
	return dir
}

func DefaultFavoritesPath() string {
	return filepath.Join(xdgHome("XDG_DATA_HOME", ".local", "share"), appName, "favorites.yaml")
}

func DefaultCacheDir() string {
	return filepath.Join(xdgHome("XDG_CACHE_HOME", ".cache"), appName)
}

func DefaultConfigPath() string {
	return filepath.Join(xdgHome("XDG_CONFIG_HOME", ".config"), appName, "config.yaml")
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
