// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/playstats/internal/cache"
	"github.com/tomtom215/playstats/internal/metrics"
)

type countingSource struct {
	keys  int
	calls atomic.Int32
}

func (c *countingSource) GetStats() cache.Stats {
	c.calls.Add(1)
	return cache.Stats{Keys: c.keys, Hits: 3, Misses: 1}
}

func (c *countingSource) HitRate() float64 { return 75 }

func TestNewCacheMonitorService(t *testing.T) {
	t.Parallel()

	svc := NewCacheMonitorService(&countingSource{}, 0, zerolog.Nop())
	if svc.interval != DefaultCacheReportInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultCacheReportInterval)
	}
	if svc.String() != "cache-monitor" {
		t.Errorf("String() = %q, want cache-monitor", svc.String())
	}

	svc = NewCacheMonitorService(&countingSource{}, time.Second, zerolog.Nop())
	if svc.interval != time.Second {
		t.Errorf("interval = %v, want 1s", svc.interval)
	}
}

func TestCacheMonitorService_ReportsOnTick(t *testing.T) {
	t.Parallel()

	source := &countingSource{keys: 2}
	svc := NewCacheMonitorService(source, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for source.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if source.calls.Load() < 3 {
		t.Errorf("reported %d times, want at least 3", source.calls.Load())
	}
}

func TestCacheMonitorService_LogsStats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	svc := NewCacheMonitorService(&countingSource{keys: 4}, time.Hour, logger)
	svc.report()

	out := buf.String()
	for _, want := range []string{`"message":"Result cache stats"`, `"service":"cache-monitor"`, `"keys":4`, `"hit_rate":75`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

// Not parallel: asserts on the process-wide entries gauge.
func TestCacheMonitorService_SetsEntriesGauge(t *testing.T) {
	c := cache.New(16, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	metrics.SetCacheEntries(0)

	svc := NewCacheMonitorService(c, time.Hour, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for testutil.ToFloat64(metrics.ResultCacheEntries) != 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-errCh

	if got := testutil.ToFloat64(metrics.ResultCacheEntries); got != 3 {
		t.Errorf("result_cache_entries = %v, want 3", got)
	}
}
