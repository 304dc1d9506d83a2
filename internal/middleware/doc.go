// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking, propagated through the logging
    context so every log line of a request carries request_id
  - Access Log: one structured zerolog line per request
  - Prometheus Metrics: HTTP request/response instrumentation labelled by
    chi route pattern

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Endpoint labels use the matched route pattern (for example
/api/v1/playtime-genre/{genre}) so path parameters do not inflate metric
cardinality. Unmatched requests are labelled "unmatched".
*/
package middleware
