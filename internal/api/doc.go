// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package api provides the HTTP query interface for Playstats.

The API is read-only and unauthenticated. Every analytics endpoint answers
from the immutable snapshot and similarity index held by an
analytics.Engine, optionally memoised in the result cache.

# Endpoints

	GET /api/v1/playtime-genre/{genre}          release year with most playtime
	GET /api/v1/user-for-genre/{genre}          top user and per-year hours
	GET /api/v1/users-recommend/{year}          three most recommended games
	GET /api/v1/users-worst-developer/{year}    three least recommended developers
	GET /api/v1/sentiment-analysis/{developer}  review sentiment counts
	GET /api/v1/game-recommendation/{id}        five most similar games
	GET /api/v1/snapshot                        dataset and index diagnostics
	GET /api/v1/health/live                     liveness probe
	GET /api/v1/health/ready                    readiness probe
	GET /metrics                                Prometheus exposition
	GET /swagger/*                              Swagger UI

# Response Format

Analytics endpoints return their label-keyed result object unwrapped, for
example:

	{"Release year with most hours played for Genre Action": "2011"}

Query time and cache status are reported in the X-Query-Time-Ms and X-Cache
response headers. Errors and the diagnostic endpoints use the standard
envelope (models.APIResponse):

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"},
	  "error": {"code": "NOT_FOUND", "message": "..."}
	}

# Error Mapping

	models.ErrNotFound          404 NOT_FOUND (DEVELOPER_NOT_FOUND for developers)
	models.ErrInsufficientData  422 INSUFFICIENT_DATA
	models.ErrValidation        400 VALIDATION_ERROR
	anything else               500 INTERNAL_ERROR

# Middleware

Applied globally in order: request ID with logging context, access log,
RealIP, Recoverer, CORS (go-chi/cors), response compression and Prometheus
instrumentation. The /api/v1 group adds per-IP rate limiting
(go-chi/httprate) and security headers.
*/
package api
