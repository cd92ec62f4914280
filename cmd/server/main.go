package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/hoard/internal/config"
	"github.com/mmynk/hoard/internal/handler"
	"github.com/mmynk/hoard/internal/middleware"
	"github.com/mmynk/hoard/internal/service"
	"github.com/mmynk/hoard/internal/storage/sqlite"
	"github.com/mmynk/hoard/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	slog.Info("Configuration loaded", "config", cfg.String())

	// Initialize SQLite storage
	store, err := sqlite.NewWithDriver(cfg.Database.Driver, cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path, "driver", cfg.Database.Driver)

	metrics := middleware.NewMetrics()

	api := handler.New(handler.Options{
		Users:       service.NewUserService(store),
		Items:       service.NewItemService(store),
		Collections: service.NewCollectionService(store),
		Metrics:     metrics.Handler(),
		Ping:        store.Ping,
	})

	// Add logging, metrics and CORS middleware
	h := middleware.Logging(metrics.Middleware(middleware.CORS(cfg.HTTP.AllowedOrigins)(api)))

	// Wrap with h2c for HTTP/2 without TLS
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: h2c.NewHandler(h, &http2.Server{}),
	}

	go func() {
		slog.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	slog.Info("Shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
