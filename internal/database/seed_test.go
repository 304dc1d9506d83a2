// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package database

import (
	"context"
	"reflect"
	"testing"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/models"
)

func TestSeedMockData_Snapshot(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	snap, err := db.LoadSnapshot(ctx, config.DatasetConfig{SeedMockData: true})
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	if len(snap.Games) != len(mockCatalog) {
		t.Errorf("games = %d, want %d", len(snap.Games), len(mockCatalog))
	}
	if len(snap.Reviews) != len(mockReviews) {
		t.Errorf("reviews = %d, want %d", len(snap.Reviews), len(mockReviews))
	}
	if len(snap.Playtime) != len(mockPlaytime)-1 {
		t.Errorf("playtime = %d, want %d (zero-minute row dropped)", len(snap.Playtime), len(mockPlaytime)-1)
	}
	for _, p := range snap.Playtime {
		if p.Minutes <= 0 {
			t.Errorf("playtime row %+v has non-positive minutes", p)
		}
	}

	// Source order is preserved.
	if snap.Games[0].ID != "10" || snap.Games[len(snap.Games)-1].ID != "99999" {
		t.Errorf("catalog order not preserved: first %s, last %s", snap.Games[0].ID, snap.Games[len(snap.Games)-1].ID)
	}

	terraria := snap.Games[5]
	if want := []string{"Action", "Adventure", "Indie", "RPG"}; !reflect.DeepEqual(terraria.Genres, want) {
		t.Errorf("Terraria genres = %v, want %v", terraria.Genres, want)
	}
	if y, ok := terraria.ReleaseYear(); !ok || y != 2011 {
		t.Errorf("Terraria release year = %d, %v; want 2011", y, ok)
	}
	if _, ok := snap.Games[len(snap.Games)-1].ReleaseYear(); ok {
		t.Error("undated game should have no release year")
	}

	first := snap.Reviews[0]
	if first.PostedYear != 2011 || !first.Recommend || first.Sentiment != models.SentimentPositive {
		t.Errorf("first review = %+v", first)
	}
}

func TestSeedMockData_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := db.SeedMockData(ctx); err != nil {
			t.Fatalf("SeedMockData() run %d error = %v", i, err)
		}
	}

	counts, err := db.RowCounts(ctx)
	if err != nil {
		t.Fatalf("RowCounts() error = %v", err)
	}
	if counts[tableCatalog] != int64(len(mockCatalog)) {
		t.Errorf("catalog rows = %d after reseeding, want %d", counts[tableCatalog], len(mockCatalog))
	}
}
