// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/playstats/docs" // Registers the swagger description
	"github.com/tomtom215/playstats/internal/analytics"
	"github.com/tomtom215/playstats/internal/api"
	"github.com/tomtom215/playstats/internal/cache"
	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/database"
	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/metrics"
	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/recommend"
	"github.com/tomtom215/playstats/internal/supervisor"
	"github.com/tomtom215/playstats/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("dataset_dir", cfg.Dataset.Dir).
		Str("db_path", cfg.Database.Path).
		Bool("mock_data", cfg.Dataset.SeedMockData).
		Msg("Starting Playstats")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ingestion and index construction must both succeed before serving.
	engine, err := buildEngine(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to prepare analytics engine")
	}

	var resultCache *cache.Cache
	if cfg.Analytics.CacheSize > 0 {
		resultCache = cache.New(cfg.Analytics.CacheSize, cfg.Analytics.CacheTTL)
		logging.Info().
			Int("size", cfg.Analytics.CacheSize).
			Dur("ttl", cfg.Analytics.CacheTTL).
			Msg("Result cache enabled")
	} else {
		logging.Info().Msg("Result cache disabled (ANALYTICS_CACHE_SIZE=0)")
	}

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout},
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if resultCache != nil {
		tree.AddMaintenanceService(services.NewCacheMonitorService(
			resultCache, services.DefaultCacheReportInterval, logging.WithComponent("cache"),
		))
	}

	handler := api.NewHandler(engine, resultCache, cfg, version)
	server := newHTTPServer(cfg, api.NewRouter(handler, cfg).SetupChi())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Playstats stopped")
}

// buildEngine ingests the dataset, builds the similarity index and wires
// both into a query engine. The database is only needed during ingestion
// and is closed before returning.
func buildEngine(ctx context.Context, cfg *config.Config) (*analytics.Engine, error) {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	index, err := buildIndex(ctx, snap, cfg.Recommend)
	if err != nil {
		return nil, err
	}

	engine, err := analytics.NewEngine(snap, index, cfg.Analytics, logging.WithComponent("analytics"))
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics engine: %w", err)
	}
	return engine, nil
}

func loadSnapshot(ctx context.Context, cfg *config.Config) (*models.Snapshot, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	snap, err := db.LoadSnapshot(ctx, cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snap, nil
}

func buildIndex(ctx context.Context, snap *models.Snapshot, rc config.RecommendConfig) (*recommend.Index, error) {
	index, err := recommend.Build(ctx, snap.Games, recommend.Config{
		Workers: rc.Workers,
		TopK:    rc.TopK,
	}, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("failed to build similarity index: %w", err)
	}

	stats := index.Stats()
	metrics.RecordIndexBuild(stats.Documents, stats.Vocabulary, stats.MatrixBytes, stats.BuildDuration)
	return index, nil
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
