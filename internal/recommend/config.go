// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import (
	"fmt"
	"runtime"
)

// DefaultTopK is the number of neighbors returned by a similarity lookup.
const DefaultTopK = 5

// Config contains index build parameters.
type Config struct {
	// Workers bounds the goroutines computing similarity rows.
	// Zero means runtime.NumCPU().
	Workers int

	// TopK is the default number of neighbors for a lookup.
	TopK int
}

// DefaultConfig returns the default index configuration.
func DefaultConfig() Config {
	return Config{
		Workers: 0,
		TopK:    DefaultTopK,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be >= 1, got %d", c.TopK)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
