package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the record checker over HTTP",
		Long: `Serve the checker as a JSON API.

Routes:
  GET  /health
  POST /api/check                 {"line": "..."}
  POST /api/validate/flight       {"value": "..."}
  POST /api/validate/computer     {"value": "..."}
  POST /api/analyze               text/plain or {"lines": [...]}; ?format=csv
  GET  /api/records               saved records
  POST /api/records               check and save {"line": "..."}
  GET  /api/records/last          last record saved through this server

The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd.Context())
			env, err := envFrom(ctx)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if addr == "" {
				addr = env.Config.Server.Address
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := ctxlog.FromContext(ctx)
			srv := server.New(server.Dependencies{
				Store:   env.Store(),
				Parser:  env.Parser(),
				Logger:  logger,
				Version: Version,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return srv.Start(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}
