// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package cache provides a bounded, thread-safe result cache with TTL support.

Query results are pure functions of the immutable snapshot, so memoising them
is always safe. The cache only bounds memory and keeps hot keys warm.

# Overview

The cache provides:
  - Size-bounded LRU eviction (hashicorp/golang-lru/v2 expirable)
  - Per-cache time-to-live for entries
  - Hit/miss/eviction counters for metrics
  - Deterministic key generation from an operation name and its arguments

# Usage Example

	c := cache.New(1024, 10*time.Minute)

	key := cache.GenerateKey("TopRecommendedGames", 2013)
	if data, ok := c.Get(key); ok {
	    return data, nil
	}
	result, err := engine.TopRecommendedGames(2013)
	if err == nil {
	    c.Set(key, result)
	}

# Thread Safety

All methods are safe for concurrent use. Counters use atomic operations.
*/
package cache
