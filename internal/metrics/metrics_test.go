// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package metrics

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/playstats/internal/models"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantType  string
	}{
		{
			name:      "successful import",
			operation: "import",
			table:     "catalog",
		},
		{
			name:      "failed scan with short error",
			operation: "scan",
			table:     "reviews",
			err:       errors.New("connection refused"),
			wantType:  "connection refused",
		},
		{
			name:      "long error is truncated to 50 chars",
			operation: "import",
			table:     "playtime",
			err:       errors.New(strings.Repeat("x", 80)),
			wantType:  strings.Repeat("x", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery(tt.operation, tt.table, 10*time.Millisecond, tt.err)

			if tt.err == nil {
				return
			}
			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantType))
			if got < 1 {
				t.Errorf("DBQueryErrors{%s,%s,%s} = %v, want >= 1", tt.operation, tt.table, tt.wantType, got)
			}
		})
	}
}

func TestRecordQuery_LabelsErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		kind string
	}{
		{models.ErrGenreNotFound, "not_found"},
		{fmt.Errorf("%w: 2 items", models.ErrInsufficientData), "insufficient_data"},
		{fmt.Errorf("%w: bad year", models.ErrValidation), "validation"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			op := "TestOp_" + tt.kind
			before := testutil.ToFloat64(QueryErrors.WithLabelValues(op, tt.kind))
			RecordQuery(op, time.Millisecond, tt.err)
			after := testutil.ToFloat64(QueryErrors.WithLabelValues(op, tt.kind))
			if after-before != 1 {
				t.Errorf("QueryErrors{%s,%s} delta = %v, want 1", op, tt.kind, after-before)
			}
		})
	}
}

func TestRecordQuery_SuccessDoesNotCountError(t *testing.T) {
	op := "TestOp_success"
	RecordQuery(op, time.Millisecond, nil)
	if got := testutil.ToFloat64(QueryErrors.WithLabelValues(op, "internal")); got != 0 {
		t.Errorf("QueryErrors{%s,internal} = %v, want 0", op, got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	op := "TestCacheOp"
	hits := testutil.ToFloat64(ResultCacheHits.WithLabelValues(op))
	misses := testutil.ToFloat64(ResultCacheMisses.WithLabelValues(op))

	RecordCacheLookup(op, true)
	RecordCacheLookup(op, false)
	RecordCacheLookup(op, false)

	if d := testutil.ToFloat64(ResultCacheHits.WithLabelValues(op)) - hits; d != 1 {
		t.Errorf("hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(ResultCacheMisses.WithLabelValues(op)) - misses; d != 2 {
		t.Errorf("misses delta = %v, want 2", d)
	}

	SetCacheEntries(7)
	if got := testutil.ToFloat64(ResultCacheEntries); got != 7 {
		t.Errorf("ResultCacheEntries = %v, want 7", got)
	}
}

func TestRecordSnapshotLoad(t *testing.T) {
	RecordSnapshotLoad(map[string]int{"catalog": 12, "reviews": 22}, 2*time.Second)

	if got := testutil.ToFloat64(SnapshotRows.WithLabelValues("catalog")); got != 12 {
		t.Errorf("SnapshotRows{catalog} = %v, want 12", got)
	}
	if got := testutil.ToFloat64(SnapshotRows.WithLabelValues("reviews")); got != 22 {
		t.Errorf("SnapshotRows{reviews} = %v, want 22", got)
	}
	if got := testutil.ToFloat64(SnapshotLoadDuration); got != 2 {
		t.Errorf("SnapshotLoadDuration = %v, want 2", got)
	}
}

func TestRecordSkippedRows(t *testing.T) {
	before := testutil.ToFloat64(SnapshotRowsSkipped.WithLabelValues("reviews", "invalid_sentiment"))
	RecordSkippedRows("reviews", "invalid_sentiment", 3)
	RecordSkippedRows("reviews", "invalid_sentiment", 0)
	after := testutil.ToFloat64(SnapshotRowsSkipped.WithLabelValues("reviews", "invalid_sentiment"))
	if after-before != 3 {
		t.Errorf("skipped delta = %v, want 3", after-before)
	}
}

func TestRecordIndexBuild(t *testing.T) {
	RecordIndexBuild(10, 42, 440, 1500*time.Millisecond)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"documents", testutil.ToFloat64(IndexDocuments), 10},
		{"vocabulary", testutil.ToFloat64(IndexVocabulary), 42},
		{"matrix_bytes", testutil.ToFloat64(IndexMatrixBytes), 440},
		{"duration", testutil.ToFloat64(IndexBuildDuration), 1.5},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestRecordAPIRequest(t *testing.T) {
	endpoint := "/api/v1/test-endpoint/{id}"
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", endpoint, "200"))
	RecordAPIRequest("GET", endpoint, "200", 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", endpoint, "200"))
	if after-before != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", after-before)
	}

	rl := testutil.ToFloat64(APIRateLimitHits.WithLabelValues(endpoint))
	RecordRateLimitHit(endpoint)
	if d := testutil.ToFloat64(APIRateLimitHits.WithLabelValues(endpoint)) - rl; d != 1 {
		t.Errorf("APIRateLimitHits delta = %v, want 1", d)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}
