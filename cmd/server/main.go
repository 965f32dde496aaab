package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"debt-portal/internal/api"
	"debt-portal/internal/config"
	"debt-portal/internal/database"
	"debt-portal/internal/handlers"
	"debt-portal/internal/repositories"
	"debt-portal/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	store, db, err := newFallbackStore(cfg)
	if err != nil {
		return err
	}
	var dbCheck handlers.DatabaseChecker
	if db != nil {
		dbCheck = db
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close fallback database", "error", err)
			}
		}()
	}

	if err := repositories.SeedStore(store); err != nil {
		return fmt.Errorf("seed fallback store: %w", err)
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	metrics.RecordGauge("fallback_accounts", float64(len(repositories.SeedAccounts())), nil)

	prober := services.NewUpstreamProber(&cfg.Upstream, metrics, logger)
	client := services.NewUpstreamClient(&cfg.Upstream, metrics, logger)
	gateway := services.NewRecordGateway(prober, client, store, metrics, services.NewAuditLogger(logger), logger)

	e := api.SetupRoutes(cfg, api.Handlers{
		Account: handlers.NewAccountHandler(gateway),
		Debt:    handlers.NewDebtHandler(gateway),
		Health:  handlers.NewHealthCheckHandler(cfg, prober, dbCheck),
	}, prometheus.DefaultGatherer)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if cfg.Upstream.IsConfigured() {
		logger.Info("upstream configured", "endpoint", cfg.Upstream.RESTEndpoint)
	} else {
		logger.Warn("CACHE_REST_ENDPOINT not set, serving fallback data only")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"fallback_driver", cfg.Fallback.Driver,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newFallbackStore returns the configured store. The database is nil for the
// in-memory driver.
func newFallbackStore(cfg *config.Config) (repositories.FallbackStoreInterface, *database.DB, error) {
	if cfg.Fallback.Driver != config.FallbackDriverSQLite {
		return repositories.NewMemoryFallbackStore(), nil, nil
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewSQLFallbackStore(db.DB), db, nil
}
