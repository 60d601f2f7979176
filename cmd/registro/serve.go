package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/registro"
	"github.com/aretw0/registro/internal/metrics"
	"github.com/aretw0/registro/internal/platform"
	httptransport "github.com/aretw0/registro/internal/transport/http"
	"github.com/aretw0/registro/pkg/export"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the records over the HTTP API",
	Long: `Serve the records over the HTTP API under /api, with Prometheus metrics
on /metrics. With --watch, edits made to the data file by other processes
(for example this same CLI) are picked up without a restart.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := slog.Default()
		m := metrics.New()

		store := openStore(ctx, false, registro.WithErrorHandler(m.ReportPersistenceError))
		m.TrackRecords(store.Len)

		if serveWatch {
			if err := store.Watch(ctx); err != nil {
				logger.Warn("live reload disabled", "error", err)
			}
		}

		exports := export.New(export.WithFormats(export.JSON, export.XML))
		handler := httptransport.New(store, exports, logger, registro.Version)
		srv := httptransport.NewServer(serveAddr, httptransport.NewRouter(handler, logger, m))

		serveErr := make(chan error, 1)
		lifecycle.Go(ctx, func(ctx context.Context) error {
			logger.Info("api listening", "url", "http://"+serveAddr+"/api", "data", dataFile)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, lifecycle.WithErrorHandler(func(err error) {
			serveErr <- err
		}))

		select {
		case err := <-serveErr:
			fatal("Error serving API", err)
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
		store.Flush(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", cfg.Addr, "Listen address (env "+platform.EnvAddr+")")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "Reload records when the data file changes on disk")
	rootCmd.AddCommand(serveCmd)
}
