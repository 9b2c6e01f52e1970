package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/badges/pkg/cache"
	"github.com/matzehuels/badges/pkg/server"
)

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		opts badgeOptions
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP badge service",
		Long: `Serve badges over HTTP:

  GET /badge/{label}/{message}[.svg]?label_color=&color=&style=
  GET /healthz

Rendered badges are cached in the backend named by server.cache in the
config file (none, file or redis).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			defaults, renderer, mode, err := opts.apply(cfg)
			if err != nil {
				return err
			}
			ttl, err := cfg.Server.TTL()
			if err != nil {
				return err
			}

			store, err := newCache(cfg.Server)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			if rc, ok := store.(*cache.RedisCache); ok {
				spin := newSpinnerWithContext(ctx, "Connecting to redis at "+cfg.Server.RedisAddr)
				spin.Start()
				if err := rc.Ping(ctx); err != nil {
					spin.StopWithError("Redis unreachable")
					return fmt.Errorf("redis %s: %w", cfg.Server.RedisAddr, err)
				}
				spin.StopWithSuccess("Connected to redis")
			}
			logger.Debug("render cache", "backend", cfg.Server.Cache, "ttl", ttl)

			srv := server.New(server.Options{
				Renderer: renderer,
				Mode:     mode,
				Defaults: defaults,
				Cache:    store,
				TTL:      ttl,
				Logger:   logger,
			})
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
