package cli

import (
	"github.com/spf13/cobra"

	"github.com/kateryna-senchenko/textencryptor/internal/api"
	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the encryption API over HTTP",
		Long: `Serve the encryption API over HTTP.

The configured cache backend must be reachable at startup; use --no-cache to
serve without one.

Endpoints:
  POST /v1/encrypt   {"text": "..."}
  GET  /healthz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.Config.Server
			if addr != "" {
				if err := errors.ValidateAddr(addr); err != nil {
					return err
				}
				cfg.Addr = addr
			}

			runner, store, err := c.newRunner(ctx, noCache, true)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := api.New(api.Config{
				Addr:         cfg.Addr,
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
				MaxBodyBytes: cfg.MaxBodyBytes,
			}, runner, c.Logger)

			c.Logger.Info("starting server", "addr", cfg.Addr, "cache", c.cacheBackend(noCache))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+api.DefaultAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}

func (c *CLI) cacheBackend(noCache bool) string {
	if noCache {
		return backendNone
	}
	return c.Config.Cache.Backend
}
