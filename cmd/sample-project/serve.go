package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	sampleproject "github.com/hgo124578/sample-project"
	"github.com/hgo124578/sample-project/demoapp"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		addr               string
		requestLogCapacity uint64
		itemCount          int
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sample application",
		Example: `
  # Serve on the port the suites expect by default.
  sample-project serve --addr :3000`[1:],
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			instance := sampleproject.NewWithOptions(sampleproject.Options{
				RequestLogCapacity:  requestLogCapacity,
				RequestLogSkipPaths: []string{"/static/"},
				HandlerOptions:      []demoapp.HandlerOption{demoapp.WithItemCount(itemCount)},
				Logger:              logger,
			})
			defer instance.Close()

			server := &http.Server{
				Addr:              addr,
				Handler:           instance.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			return serve(cmd.Context(), logger, server)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":3000", "listen address")
	serveCmd.Flags().Uint64Var(&requestLogCapacity, "request-log-capacity", 0, "number of served requests to keep (0 uses the default)")
	serveCmd.Flags().IntVar(&itemCount, "items", demoapp.DefaultItemCount, "number of list items on the performance test page")

	return serveCmd
}

// serve runs server until ctx is cancelled and then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server) error {
	errs := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", server.Addr))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
