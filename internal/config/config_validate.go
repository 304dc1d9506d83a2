// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/playstats/internal/logging"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour

	maxRecommendTopK = 100
)

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateDataset,
		c.validateDatabase,
		c.validateRecommend,
		c.validateAnalytics,
		c.validateServer,
		c.validateRateLimits,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateDataset requires all three file names unless mock data is seeded.
func (c *Config) validateDataset() error {
	if c.Dataset.SeedMockData {
		return nil
	}
	if c.Dataset.ReviewsFile == "" {
		return fmt.Errorf("REVIEWS_FILE is required unless SEED_MOCK_DATA=true")
	}
	if c.Dataset.CatalogFile == "" {
		return fmt.Errorf("CATALOG_FILE is required unless SEED_MOCK_DATA=true")
	}
	if c.Dataset.PlaytimeFile == "" {
		return fmt.Errorf("PLAYTIME_FILE is required unless SEED_MOCK_DATA=true")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH must not be empty (use :memory: for an in-process database)")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.Workers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must be >= 0")
	}
	if c.Recommend.TopK < 1 || c.Recommend.TopK > maxRecommendTopK {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and %d", maxRecommendTopK)
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	switch c.Analytics.YearMatch {
	case YearMatchParsed, YearMatchSubstring:
	default:
		return fmt.Errorf("ANALYTICS_YEAR_MATCH must be one of: %s, %s", YearMatchParsed, YearMatchSubstring)
	}
	if c.Analytics.CacheSize < 0 {
		return fmt.Errorf("ANALYTICS_CACHE_SIZE must be >= 0")
	}
	if c.Analytics.CacheSize > 0 && c.Analytics.CacheTTL <= 0 {
		return fmt.Errorf("ANALYTICS_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateRateLimits validates rate limiting bounds (skipped when disabled).
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
