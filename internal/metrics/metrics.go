// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/playstats/internal/models"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Snapshot Metrics
	SnapshotRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "snapshot_rows",
			Help: "Rows loaded into the in-memory snapshot per table",
		},
		[]string{"table"},
	)

	SnapshotRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_rows_skipped_total",
			Help: "Rows dropped while scanning the snapshot",
		},
		[]string{"table", "reason"},
	)

	SnapshotLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_load_duration_seconds",
			Help: "Duration of the last snapshot load in seconds",
		},
	)

	// Similarity Index Metrics
	IndexDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_index_documents",
			Help: "Number of catalog entries in the similarity index",
		},
	)

	IndexVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_index_vocabulary",
			Help: "Number of distinct feature terms",
		},
	)

	IndexMatrixBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_index_matrix_bytes",
			Help: "Size of the packed similarity matrix in bytes",
		},
	)

	IndexBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_index_build_duration_seconds",
			Help: "Duration of the last similarity index build in seconds",
		},
	)

	// Query Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_query_duration_seconds",
			Help:    "Duration of analytics engine operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_query_errors_total",
			Help: "Total number of failed analytics operations by error kind",
		},
		[]string{"operation", "kind"},
	)

	// Result Cache Metrics
	ResultCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Total number of result cache hits",
		},
		[]string{"operation"},
	)

	ResultCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_misses_total",
			Help: "Total number of result cache misses",
		},
		[]string{"operation"},
	)

	ResultCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "result_cache_entries",
			Help: "Current number of cached results",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordSnapshotLoad records table sizes and the total load time.
func RecordSnapshotLoad(rows map[string]int, duration time.Duration) {
	for table, n := range rows {
		SnapshotRows.WithLabelValues(table).Set(float64(n))
	}
	SnapshotLoadDuration.Set(duration.Seconds())
}

// RecordSkippedRows counts rows dropped during a snapshot scan.
func RecordSkippedRows(table, reason string, n int) {
	if n <= 0 {
		return
	}
	SnapshotRowsSkipped.WithLabelValues(table, reason).Add(float64(n))
}

// RecordIndexBuild records the shape and build time of the similarity index.
func RecordIndexBuild(documents, vocabulary int, matrixBytes int64, duration time.Duration) {
	IndexDocuments.Set(float64(documents))
	IndexVocabulary.Set(float64(vocabulary))
	IndexMatrixBytes.Set(float64(matrixBytes))
	IndexBuildDuration.Set(duration.Seconds())
}

// RecordQuery records an analytics operation. Failures are labelled by
// error kind.
func RecordQuery(operation string, duration time.Duration, err error) {
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		QueryErrors.WithLabelValues(operation, models.KindName(err)).Inc()
	}
}

// RecordCacheLookup records a result cache hit or miss.
func RecordCacheLookup(operation string, hit bool) {
	if hit {
		ResultCacheHits.WithLabelValues(operation).Inc()
	} else {
		ResultCacheMisses.WithLabelValues(operation).Inc()
	}
}

// SetCacheEntries updates the live cache entry gauge.
func SetCacheEntries(n int) {
	ResultCacheEntries.Set(float64(n))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
