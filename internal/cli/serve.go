package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buttonstrip/internal/server"
	"github.com/matzehuels/buttonstrip/pkg/cache"
	"github.com/matzehuels/buttonstrip/pkg/editor"
	"github.com/matzehuels/buttonstrip/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string
	redisURL    string // shared artifact cache; empty uses the local file cache
	cachePrefix string
	noCache     bool
	sessionTTL  int // seconds
}

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, cachePrefix: appName + ":"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Long: `Run the HTTP preview server.

Endpoints:
  GET  /healthz
  POST /render                     render to several formats (JSON envelope)
  POST /render/{format}            render one format (raw body)
  POST /resolve                    resolve a settings document
  POST /edit/sessions              start a handle drag
  POST /edit/sessions/{id}/move    move the handle
  POST /edit/sessions/{id}/end     finish and return the settings patch

With --redis several server instances share one render cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for the render cache (redis://host:port/db)")
	cmd.Flags().StringVar(&opts.cachePrefix, "cache-prefix", opts.cachePrefix, "key prefix in the shared cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&opts.sessionTTL, "session-ttl", 600, "seconds an idle edit session is kept")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, opts.cachePrefix), logger)
	defer runner.Close()

	srv := server.New(runner, logger, server.WithSessionStore(editor.NewStore(secondsToDuration(opts.sessionTTL))))
	printInfo("Preview server on http://%s", opts.addr)
	return srv.ListenAndServe(ctx, opts.addr)
}

func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisURL == "" {
		return newCache(false)
	}
	rc, err := cache.NewRedisCache(opts.redisURL)
	if err != nil {
		return nil, err
	}
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	c.Logger.Info("using redis cache")
	return rc, nil
}
