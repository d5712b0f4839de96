// Package cli implements the infiniscroll command-line interface.
//
// # Commands
//
//   - run: replay scenario files and print or export their traces
//   - show: print a previously exported trace
//   - browse: scroll an infinite list interactively in the terminal
//   - cache: manage the trace cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every tile, recenter and relayout pass of the engine. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/infiniscroll/pkg/buildinfo"
	"github.com/matzehuels/infiniscroll/pkg/cache"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "infiniscroll"
)

// Log levels exported for use in main.go.
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
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Infiniscroll replays and explores infinite scroll layouts",
		Long: `Infiniscroll drives a cell virtualization engine that presents an endless,
bidirectional list of items with a small pool of reusable cells. Scenarios
describe a scroll container and the gestures performed on it; the engine's
visible window after every step is recorded as a trace.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a scenario runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool, cacheURL string) (*scenario.Runner, cache.Cache, error) {
	tc, err := newCache(ctx, noCache, cacheURL)
	if err != nil {
		return nil, nil, err
	}
	return scenario.NewRunner(tc, nil, c.Logger), tc, nil
}

// newCache selects the trace cache: none, Redis when a URL is given, or the
// file cache under cacheDir.
func newCache(ctx context.Context, noCache bool, cacheURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cacheURL != "" {
		cfg, err := cache.ParseRedisURL(cacheURL)
		if err != nil {
			return nil, err
		}
		cfg.KeyPrefix = appName + ":"
		rc, err := cache.NewRedisCache(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/infiniscroll/).
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
