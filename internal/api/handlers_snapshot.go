// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/playstats/internal/cache"
	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/recommend"
)

// SnapshotInfo is the payload of the snapshot diagnostics endpoint.
type SnapshotInfo struct {
	Snapshot models.SnapshotStats `json:"snapshot"`
	Index    recommend.Stats      `json:"index"`
	Cache    *CacheInfo           `json:"cache,omitempty"`
}

// CacheInfo reports result cache counters and settings.
type CacheInfo struct {
	cache.Stats
	HitRate    float64 `json:"hit_rate"`
	TTLSeconds float64 `json:"ttl_seconds"`
}

// Snapshot reports dataset row counts, similarity index size and the result
// cache state.
//
// @Summary Dataset and index diagnostics
// @Description Returns row counts of the loaded snapshot, the vocabulary and memory size of the similarity index, and result cache counters, hit rate and entry TTL.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=SnapshotInfo} "Diagnostics retrieved successfully"
// @Failure 503 {object} models.APIResponse "Query engine not available"
// @Router /snapshot [get]
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Query engine not available", nil)
		return
	}

	info := SnapshotInfo{
		Snapshot: h.snapshotStats,
		Index:    h.engine.Index().Stats(),
	}
	if h.cache != nil {
		info.Cache = &CacheInfo{
			Stats:      h.cache.GetStats(),
			HitRate:    h.cache.HitRate(),
			TTLSeconds: h.cache.TTL().Seconds(),
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   info,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
