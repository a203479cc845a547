package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var (
		host string
		port string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serves the template matcher and deck generation over HTTP:
  GET  /api/templates  GET /api/styles  POST /api/decks  GET /metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			srv, err := server.New(cfg,
				server.WithLogger(a.logger),
				server.WithMetricsRegistry(registry),
				server.WithGenerator(orchestrator.New(orchestrator.WithLogger(a.logger))),
			)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              net.JoinHostPort(host, port),
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serveHTTP(ctx, httpServer)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "interface to bind")
	cmd.Flags().StringVarP(&port, "port", "p", "8080", "port to listen on")
	return cmd
}

// serveHTTP runs httpServer until it fails or ctx is done, then shuts it down
// within shutdownTimeout. All output is written from the calling goroutine.
func (a *app) serveHTTP(ctx context.Context, httpServer *http.Server) error {
	fmt.Fprintf(a.out, "Serving deckgen API on %s\n", httpServer.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		fmt.Fprintln(a.out, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("graceful shutdown failed", "error", err)
			return httpServer.Close()
		}
		fmt.Fprintln(a.out, "Server stopped")
		return nil
	}
}
