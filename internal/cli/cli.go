// Package cli implements the dotmark command-line interface.
//
// The CLI converts markdown documents to HTML with Graphviz graphs rendered
// to SVG, and offers a few helpers around the same renderer. It is built
// with cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Convert markdown documents, rendering embedded graphs
//   - graph: Render standalone graph files
//   - hash: Print the file name a graph source renders to
//   - cache: Manage the layout cache
//
// # Configuration
//
// Settings come from the nearest dotmark.toml (or --config) and are
// overridden by flags. See package config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotmark/pkg/cache"
	"github.com/matzehuels/dotmark/pkg/config"
	"github.com/matzehuels/dotmark/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dotmark"

	// layoutPrefix namespaces layout entries in shared cache backends.
	layoutPrefix = "layout:"
)

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig returns the configuration named by --config, else the nearest
// dotmark.toml above the working directory, else the defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	path := c.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Default(), nil
		}
		found, ok := config.Find(wd)
		if !ok {
			c.Logger.Debug("no config file found, using defaults")
			return config.Default(), nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// =============================================================================
// Renderer Factory
// =============================================================================

// newRenderer builds a renderer backed by the configured layout cache.
// The returned cache must be closed by the caller.
func (c *CLI) newRenderer(ctx context.Context, cfg *config.Config, noCache bool) (*render.Renderer, cache.Cache, error) {
	backend := cfg.Cache
	if noCache {
		backend.Backend = config.BackendNone
	}
	lc, err := newCache(ctx, backend)
	if err != nil {
		return nil, nil, err
	}

	r := render.New(
		render.WithKey(cfg.Key),
		render.WithCache(lc, backend.TTL.Duration),
		render.WithLogger(c.Logger),
	)
	return r, lc, nil
}

func newCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	var (
		inner cache.Cache
		err   error
	)
	switch cfg.Backend {
	case config.BackendFile:
		dir := cfg.Dir
		if dir == "" {
			if dir, err = cacheDir(); err != nil {
				return cache.NewNullCache(), nil
			}
		}
		inner, err = cache.NewFileCache(dir)
	case config.BackendRedis:
		inner, err = cache.NewRedisCache(ctx, cfg.RedisURL)
	default:
		return cache.NewNullCache(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.Backend, err)
	}
	return cache.Scoped(inner, layoutPrefix), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dotmark/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// fileCacheDir returns the directory of the file cache for cfg.
func fileCacheDir(cfg config.Cache) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	return cacheDir()
}
