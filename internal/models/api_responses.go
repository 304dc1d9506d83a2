// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

import (
	"time"
)

// APIResponse is the envelope used for error responses and for the
// diagnostic endpoints (health, snapshot). Query endpoints return their
// result object unwrapped so that clients of the public API see the exact
// label-keyed shapes.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "INSUFFICIENT_DATA",
//	    "message": "fewer than three games have recommendations in 1999"
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Query execution time in milliseconds (omitted if 0)
//   - Cached: Whether the result came from the result cache (omitted if false)
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Fields:
//   - Code: Machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
//   - Message: Human-readable error message
//   - Details: Additional context (field names, constraints, etc.)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the readiness endpoint.
type HealthStatus struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	SnapshotRows int       `json:"snapshot_rows"`
	IndexedGames int       `json:"indexed_games"`
	Uptime       float64   `json:"uptime_seconds"`
	CheckedAt    time.Time `json:"checked_at"`
}
