// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"time"

	"github.com/tomtom215/playstats/internal/analytics"
	"github.com/tomtom215/playstats/internal/cache"
	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/models"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Response and parameter helpers
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_analytics.go: The six analytics endpoints
//   - handlers_snapshot.go: Dataset and index diagnostics
type Handler struct {
	engine    *analytics.Engine
	cache     *cache.Cache // nil when result caching is disabled
	config    *config.Config
	version   string
	startTime time.Time

	// snapshotStats is computed once; the snapshot never changes.
	snapshotStats models.SnapshotStats
	executor      *QueryExecutor
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - engine: Query engine over the loaded snapshot and similarity index
//   - resultCache: Result cache, or nil to run every query
//   - cfg: Application configuration
//   - version: Build version reported by the readiness probe
//
// Example:
//
//	handler := api.NewHandler(engine, resultCache, cfg, version)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(engine *analytics.Engine, resultCache *cache.Cache, cfg *config.Config, version string) *Handler {
	h := &Handler{
		engine:    engine,
		cache:     resultCache,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
	if engine != nil {
		h.snapshotStats = engine.Snapshot().Stats()
	}
	h.executor = NewQueryExecutor(h)
	return h
}
