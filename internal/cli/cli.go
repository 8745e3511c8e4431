// Package cli implements the hullviz command-line interface.
//
// # Commands
//
//   - layout: lay out a hypergraph document and write a layout file
//   - sizes: print the default drawing sizes for a graph shape
//   - init-positions: emit seeded random vertex positions
//   - serve: run the HTTP API
//   - cache: manage the local layout cache
//
// # Configuration
//
// Defaults come from hullviz.toml (see [Config]); flags override the file.
// The file is looked up at --config, then ./hullviz.toml, then
// $XDG_CONFIG_HOME/hullviz/hullviz.toml.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hullviz/pkg/buildinfo"
	"github.com/matzehuels/hullviz/pkg/cache"
	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "hullviz"

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
	Config Config

	configPath string
	status     io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
		status: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "hullviz lays out hypergraphs as nested hull outlines",
		Long:         `hullviz computes the outline geometry of a hypergraph drawing: every hyperedge becomes a smooth convex outline of tangent lines and arcs around its vertices, with nested edges drawn progressively wider.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./hullviz.toml or $XDG_CONFIG_HOME/hullviz/hullviz.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.sizesCommand())
	root.AddCommand(c.initPositionsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, c.Config.Cache.Prefix), c.Logger)
	runner.TTL = c.Config.Cache.TTL
	return runner, nil
}

// newCache picks Redis when an address is configured and the file cache
// otherwise. An unusable file cache directory disables caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := c.Config.Cache.RedisAddr; addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: addr})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "connect to redis")
		}
		return rc, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cache.DefaultDir(appName)
}
