// Package cli implements the squarecode command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kateryna-senchenko/textencryptor/pkg/buildinfo"
	"github.com/kateryna-senchenko/textencryptor/pkg/cache"
	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
	"github.com/kateryna-senchenko/textencryptor/pkg/observability"
	"github.com/kateryna-senchenko/textencryptor/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "squarecode"

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

	// In is read when no text is given on the command line.
	In io.Reader
	// Out receives command results; logs go to the logger's writer.
	Out io.Writer

	// dialRedis opens the Redis backend; tests replace it.
	dialRedis func(context.Context, cache.RedisConfig) (cache.Cache, error)

	configPath string
	verbose    bool
}

// New creates a CLI that writes results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Config: DefaultConfig(),
		In:     os.Stdin,
		Out:    out,

		dialRedis: func(ctx context.Context, cfg cache.RedisConfig) (cache.Cache, error) {
			rc, err := cache.NewRedisCache(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return rc, nil
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Square code text encryption",
		Long: `squarecode encrypts text with the square code cipher: whitespace is removed,
the remaining characters are written row by row into a near-square grid, and
the grid is read back column by column.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+displayConfigPath()+")")

	root.AddCommand(c.encryptCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute builds the command tree and runs it with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// setup loads configuration and applies logging settings before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, _ := log.ParseLevel(cfg.Log.Level)
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	cache.SetRedisLogger(c.Logger)

	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetCipherHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	} else {
		observability.Reset()
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
// The caller must close the returned cache.
//
// When required is false an unreachable cache backend degrades to no caching
// with a warning; when true it is an error.
func (c *CLI) newRunner(ctx context.Context, noCache, required bool) (*pipeline.Runner, cache.Cache, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		if required {
			return nil, nil, err
		}
		c.Logger.Warn("cache disabled", "backend", c.Config.Cache.Backend, "err", errors.UserMessage(err))
		store = cache.NewNullCache()
	}
	var keyer cache.Keyer
	if c.Config.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, c.Config.Cache.Prefix)
	}
	return pipeline.NewRunner(store, keyer, c.Logger), store, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case backendRedis:
		return c.dialRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case backendFile:
		dir, err := c.cacheDir()
		if err != nil {
			return nil, err
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCacheUnavailable, err, "open cache dir %s", dir)
		}
		return fc, nil
	default:
		return cache.NewNullCache(), nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/squarecode/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate home directory")
	}
	return filepath.Join(home, ".cache", appName), nil
}
