// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	t.Parallel()

	c := New(10, time.Minute)
	c.Set("key1", "value1")

	got, ok := c.Get("key1")
	if !ok {
		t.Fatal("expected key1 to be cached")
	}
	if got != "value1" {
		t.Errorf("Get(key1) = %v, want value1", got)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
	}
	if rate := c.HitRate(); rate != 50 {
		t.Errorf("HitRate() = %v, want 50", rate)
	}
}

func TestCache_Expiration(t *testing.T) {
	t.Parallel()

	c := New(10, 20*time.Millisecond)
	c.Set("key", 1)
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected entry to expire")
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New(2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if ev := c.GetStats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestCache_TTL(t *testing.T) {
	t.Parallel()

	if got := New(4, 90*time.Second).TTL(); got != 90*time.Second {
		t.Errorf("TTL() = %v, want 90s", got)
	}
	if got := New(4, 0).TTL(); got != 0 {
		t.Errorf("TTL() = %v, want 0", got)
	}
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := New(100, time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (n+j)%50)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	stats := c.GetStats()
	if stats.Hits+stats.Misses != 1600 {
		t.Errorf("hits+misses = %d, want 1600", stats.Hits+stats.Misses)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	a := GenerateKey("TopRecommendedGames", 2013)
	b := GenerateKey("TopRecommendedGames", 2013)
	if a != b {
		t.Errorf("GenerateKey not deterministic: %q vs %q", a, b)
	}
	if a == GenerateKey("WorstDevelopers", 2013) {
		t.Error("different methods should produce different keys")
	}
	if a == GenerateKey("TopRecommendedGames", 2014) {
		t.Error("different params should produce different keys")
	}
}
