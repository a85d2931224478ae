package cli

import (
	"github.com/spf13/cobra"

	"github.com/grouptools/transversal/pkg/cache"
	"github.com/grouptools/transversal/pkg/runner"
	"github.com/grouptools/transversal/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the checker over HTTP",
		Long: `Run the HTTP API. POST /v1/check accepts a JSON problem document and
responds with the verdict; GET /healthz reports liveness.

With a [redis] section in the config file, answers are memoized in the
shared Redis backend so that replicas serve repeat problems from cache.
Otherwise the local file cache is used.`,
		Example: `  transversal serve
  transversal serve --addr :9090 --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := c.serveCache(cmd, noCache)
			if err != nil {
				return err
			}

			r := runner.NewRunner(backend, nil, c.Logger)
			defer r.Close()

			return server.New(r, c.Logger).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// serveCache picks the cache backend for the server: Redis when
// configured, the file cache otherwise.
func (c *CLI) serveCache(cmd *cobra.Command, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.cfg.Redis.Addr != "" {
		backend, err := cache.NewRedisCache(cmd.Context(), cache.RedisConfig{
			Addr:     c.cfg.Redis.Addr,
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", c.cfg.Redis.Addr)
		return backend, nil
	}
	return c.newCache(false)
}
