package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/producer-console/pkg/server"
	"github.com/doodlesbykumbi/producer-console/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the producer console API server",
	Long: `Run the producer console API server.

Producers are held in memory and loaded from the seed file, if one is
configured. When a role file is configured, roles written to it by
"consolectl role switch" are adopted by the running server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = a.cfg.ListenAddress
		}
		return runServer(cmd.Context(), a, addr)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringP("listen", "l", "", "listen address (overrides listen_address)")
}

func runServer(ctx context.Context, a *app, addr string) error {
	stopTracking := a.service.TrackStore()
	defer stopTracking()

	if a.roles != nil {
		go func() {
			if err := a.roles.Watch(ctx, a.sessions, a.table, logger); err != nil {
				logger.Error("role file watch stopped", "error", err)
			}
		}()
	}

	s := server.NewServer(a.service, a.metrics, addr, os.Stdout)
	s.DefaultPageSize = a.cfg.DefaultPageSize
	endpoints.RegisterAll(s)

	errc := make(chan error, 1)
	go func() {
		sess := a.sessions.Current()
		logger.Info("running server", "address", addr, "tenant", sess.TenantID, "role", sess.Role)
		errc <- s.Start()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
