package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tato14/Ped-eeg-position/internal/api"
	"github.com/Tato14/Ped-eeg-position/pkg/cache"
	"github.com/Tato14/Ped-eeg-position/pkg/config"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

The serve command exposes the layout engine over HTTP:

  GET /healthz     liveness probe
  GET /v1/layout   computed coordinates as JSON
  GET /v1/render   rendered diagram (svg, png, pdf, json, dot)

Configuration is read from ` + config.Path() + ` when present. The cache
backend follows the config: Redis when redis_url is set, otherwise files
under the XDG cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.Path()+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe loads configuration, picks a cache backend, and serves until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, configPath string, noCache bool) error {
	if configPath == "" {
		configPath = config.Path()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	store, err := c.serveCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(store, artifactKeyer(), c.Logger)
	runner.TTL = cfg.Cache.Duration()
	defer runner.Close()

	srv := api.New(runner, c.Logger, cfg)
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serveCache selects the cache backend from config. Redis wins when
// configured; otherwise artifacts are cached as files.
func (c *CLI) serveCache(ctx context.Context, cfg config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache || !cfg.Enabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache")
		return rc, nil
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}
