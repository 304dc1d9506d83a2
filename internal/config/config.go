// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package config

import (
	"path/filepath"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig locates the three Parquet tables loaded at startup.
// File names are resolved relative to Dir unless absolute.
type DatasetConfig struct {
	Dir          string `koanf:"dir"`
	ReviewsFile  string `koanf:"reviews_file"`
	CatalogFile  string `koanf:"catalog_file"`
	PlaytimeFile string `koanf:"playtime_file"`

	// SeedMockData replaces the Parquet files with a small built-in dataset.
	// Intended for local development and screenshot tests.
	SeedMockData bool `koanf:"seed_mock_data"`
}

// ReviewsPath returns the resolved path of the reviews table.
func (d DatasetConfig) ReviewsPath() string { return d.resolve(d.ReviewsFile) }

// CatalogPath returns the resolved path of the catalog table.
func (d DatasetConfig) CatalogPath() string { return d.resolve(d.CatalogFile) }

// PlaytimePath returns the resolved path of the playtime table.
func (d DatasetConfig) PlaytimePath() string { return d.resolve(d.PlaytimeFile) }

func (d DatasetConfig) resolve(name string) string {
	if filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// DatabaseConfig holds DuckDB settings for the ingestion database.
type DatabaseConfig struct {
	Path      string `koanf:"path"`       // ":memory:" keeps ingestion fully in-process
	MaxMemory string `koanf:"max_memory"` // DuckDB memory limit, e.g. "1GB"
	Threads   int    `koanf:"threads"`    // Number of DuckDB threads (0 = use NumCPU)
}

// RecommendConfig holds similarity index settings.
type RecommendConfig struct {
	// Workers bounds the goroutines computing similarity rows (0 = NumCPU).
	Workers int `koanf:"workers"`

	// TopK is the number of similar games returned per lookup.
	TopK int `koanf:"top_k"`
}

// Year match policies for review-based queries.
const (
	YearMatchParsed    = "parsed"
	YearMatchSubstring = "substring"
)

// AnalyticsConfig holds query engine settings.
type AnalyticsConfig struct {
	// YearMatch selects how a review's posted text is matched against a
	// requested year: "parsed" compares the year extracted at ingestion,
	// "substring" checks whether the posted text contains the year digits.
	YearMatch string `koanf:"year_match"`

	// CacheSize is the maximum number of memoised query results (0 disables).
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// SubstringYearMatch reports whether the legacy substring policy is active.
func (a AnalyticsConfig) SubstringYearMatch() bool {
	return a.YearMatch == YearMatchSubstring
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds HTTP hardening settings. The API is read-only and
// unauthenticated; these settings only cover CORS and rate limiting.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load loads configuration from defaults, an optional YAML file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
