package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/config"
	"github.com/vangoframework/storefront/internal/handlers"
	"github.com/vangoframework/storefront/internal/server"
	"github.com/vangoframework/storefront/internal/uistate"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// UI state store
	state, err := uistate.NewStore(cfg.UISecret, cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to create ui state store: %v", err)
	}

	// Catalog API
	products := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout)

	// Handlers and router
	h := handlers.New(cfg, products, state, logger)
	r := server.NewRouter(h, state, logger)

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"catalog", cfg.CatalogBaseURL,
		)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdown
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}

	logger.Info("shutdown complete")
}
