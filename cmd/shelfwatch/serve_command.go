package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/shelfwatch/internal/adapters/http/api"
	"github.com/okian/shelfwatch/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo inventory API",
		Long:  "Serve the demo inventory dataset over HTTP so the pipeline has a live /api/inventory endpoint to fetch from.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := cmdCtx.service(cmd)
			if err != nil {
				return err
			}
			log := logger.Get()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mux := http.NewServeMux()
			apiServer := api.NewServer(svc, svc)
			apiServer.Register(ctx, mux)

			srv := &http.Server{
				Addr:              cmdCtx.cfg.Addr,
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info(ctx, "starting demo inventory API", logger.String("addr", cmdCtx.cfg.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- api.WrapKind("serve", api.ErrServe, err)
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			log.Info(ctx, "shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return api.WrapKind("shutdown", api.ErrServe, err)
			}
			log.Info(ctx, "server stopped")
			return nil
		},
	}
}
