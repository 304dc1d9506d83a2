// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/playstats/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once the snapshot and similarity index are loaded.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK when the dataset snapshot and similarity index are loaded. Returns 503 otherwise.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:    "not_ready",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		CheckedAt: time.Now(),
	}

	ready := h.engine != nil && h.engine.Index().Len() > 0
	if h.engine != nil {
		health.SnapshotRows = h.snapshotStats.Games + h.snapshotStats.Reviews + h.snapshotStats.Playtime
		health.IndexedGames = h.engine.Index().Len()
	}

	statusCode := http.StatusServiceUnavailable
	if ready {
		statusCode = http.StatusOK
		health.Status = "ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: health.Status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: health.CheckedAt,
		},
	})
}
