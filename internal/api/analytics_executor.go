// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/playstats/internal/cache"
	"github.com/tomtom215/playstats/internal/metrics"
	"github.com/tomtom215/playstats/internal/models"
)

// QueryExecutor encapsulates the cache-first flow shared by the analytics
// handlers:
//
//  1. Derive a cache key from the operation name and validated parameters
//  2. Return the cached result if present
//  3. Otherwise run the query and cache a successful result
//  4. Respond with the unwrapped result and query metadata headers
//
// Errors are never cached. Results are deterministic functions of the
// immutable snapshot, so a cached entry stays correct until it expires.
//
// Example usage:
//
//	h.executor.Execute(w, r, analytics.OpPeakYearForGenre, req, func() (interface{}, error) {
//	    return h.engine.PeakYearForGenre(req.Genre)
//	})
type QueryExecutor struct {
	handler *Handler
}

// NewQueryExecutor creates a new query executor bound to h.
func NewQueryExecutor(h *Handler) *QueryExecutor {
	return &QueryExecutor{handler: h}
}

// QueryFunc runs one analytics query.
type QueryFunc func() (interface{}, error)

// Execute runs query for operation with cache lookup keyed by params.
func (e *QueryExecutor) Execute(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	params interface{},
	query QueryFunc,
) {
	if e.handler.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Query engine not available", nil)
		return
	}

	start := time.Now()
	resultCache := e.handler.cache

	var cacheKey string
	if resultCache != nil {
		cacheKey = cache.GenerateKey(operation, params)
		if cached, found := resultCache.Get(cacheKey); found {
			metrics.RecordCacheLookup(operation, true)
			respondResult(w, cached, models.Metadata{
				Timestamp: time.Now(),
				Cached:    true,
			})
			return
		}
		metrics.RecordCacheLookup(operation, false)
	}

	result, err := query()
	if err != nil {
		respondQueryError(w, r, operation, err)
		return
	}

	if resultCache != nil {
		resultCache.Set(cacheKey, result)
		metrics.SetCacheEntries(resultCache.Len())
	}

	respondResult(w, result, models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(start).Milliseconds(),
	})
}
