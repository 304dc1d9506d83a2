// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry at package init through
promauto and exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Query Metrics:
  - analytics_query_duration_seconds: Engine operation latency (histogram)
    Labels: operation
  - analytics_query_errors_total: Failed operations (counter)
    Labels: operation, kind (not_found, insufficient_data, validation, internal)
  - result_cache_hits_total / result_cache_misses_total (counter)
    Labels: operation
  - result_cache_entries: Live cache entries (gauge)

Snapshot Metrics:
  - duckdb_query_duration_seconds: Ingestion query time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed ingestion queries (counter)
    Labels: operation, table, error_type
  - snapshot_rows: Rows loaded per table (gauge)
    Labels: table
  - snapshot_rows_skipped_total: Rows dropped during scan (counter)
    Labels: table, reason
  - snapshot_load_duration_seconds: Last full snapshot load time (gauge)

Similarity Index Metrics:
  - similarity_index_documents: Indexed catalog entries (gauge)
  - similarity_index_vocabulary: Distinct feature terms (gauge)
  - similarity_index_matrix_bytes: Packed matrix size (gauge)
  - similarity_index_build_duration_seconds: Last build time (gauge)

# Usage

	start := time.Now()
	result, err := engine.TopRecommendedGames(2013)
	metrics.RecordQuery("TopRecommendedGames", time.Since(start), err)

# Testing

Tests read collector values with prometheus/testutil:

	before := testutil.ToFloat64(metrics.ResultCacheHits.WithLabelValues("op"))
*/
package metrics
