// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playstats/internal/cache"
	"github.com/tomtom215/playstats/internal/metrics"
)

// DefaultCacheReportInterval is used when no interval is configured.
const DefaultCacheReportInterval = 30 * time.Second

// CacheStatsSource exposes result cache counters.
// Satisfied by *cache.Cache.
type CacheStatsSource interface {
	GetStats() cache.Stats
	HitRate() float64
}

// CacheMonitorService periodically publishes result cache occupancy.
//
// Entries expire in the background, so the entries gauge set on writes
// drifts upward between queries. The monitor re-reads the cache on a
// ticker to keep the gauge accurate and logs the counters at debug level.
type CacheMonitorService struct {
	source   CacheStatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheMonitorService creates a cache monitor. A non-positive interval
// falls back to DefaultCacheReportInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheMonitorService(source CacheStatsSource, interval time.Duration, logger zerolog.Logger) *CacheMonitorService {
	if interval <= 0 {
		interval = DefaultCacheReportInterval
	}
	return &CacheMonitorService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "cache-monitor").Logger(),
		name:     "cache-monitor",
	}
}

// Serve implements suture.Service. It reports once immediately and then on
// every tick until ctx is canceled.
func (s *CacheMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.report()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *CacheMonitorService) report() {
	stats := s.source.GetStats()
	metrics.SetCacheEntries(stats.Keys)

	s.logger.Debug().
		Int("keys", stats.Keys).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Float64("hit_rate", s.source.HitRate()).
		Msg("Result cache stats")
}

// String implements fmt.Stringer; suture uses it in event logs.
func (s *CacheMonitorService) String() string {
	return s.name
}
