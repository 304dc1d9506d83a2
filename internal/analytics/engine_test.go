// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/recommend"
)

func releaseDate(year int) *time.Time {
	t := time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func review(itemID, userID, posted string, recommend bool, sentiment models.Sentiment) models.Review {
	return models.Review{
		ItemID:     itemID,
		UserID:     userID,
		Posted:     posted,
		PostedYear: models.ExtractYear(posted),
		Recommend:  recommend,
		Sentiment:  sentiment,
	}
}

const (
	posted2011 = "Posted November 5, 2011."
	posted2010 = "Posted March 14, 2010."
)

// testGames is a small catalog with one undated entry and one developer
// without reviews.
func testGames() []models.Game {
	return []models.Game{
		{ID: "10", Name: "Counter-Strike", Genres: []string{"Action"}, Specs: []string{"Multi-player"}, Developer: "Valve", ReleaseDate: releaseDate(2000)},
		{ID: "20", Name: "Team Fortress Classic", Genres: []string{"Action"}, Specs: []string{"Multi-player"}, Developer: "Valve", ReleaseDate: releaseDate(1999)},
		{ID: "30", Name: "Day of Defeat", Genres: []string{"Action"}, Specs: []string{"Multi-player"}, Developer: "Valve", ReleaseDate: releaseDate(2003)},
		{ID: "400", Name: "Portal", Genres: []string{"Action", "Puzzle"}, Specs: []string{"Single-player"}, Developer: "Valve", ReleaseDate: releaseDate(2007)},
		{ID: "8930", Name: "Sid Meier's Civilization V", Genres: []string{"Strategy"}, Specs: []string{"Single-player", "Multi-player"}, Developer: "Firaxis Games", ReleaseDate: releaseDate(2010)},
		{ID: "105600", Name: "Terraria", Genres: []string{"Action", "Adventure", "Indie", "RPG"}, Specs: []string{"Single-player", "Multi-player"}, Developer: "Re-Logic", ReleaseDate: releaseDate(2011)},
		{ID: "99999", Name: "Undated Action", Genres: []string{"Action"}, Specs: []string{"Single-player"}, Developer: "Nobody"},
		{ID: "4000", Name: "Garry's Mod", Genres: []string{"Indie", "Simulation"}, Specs: []string{"Multi-player"}, Developer: "Facepunch Studios", ReleaseDate: releaseDate(2006)},
	}
}

func testPlaytime() []models.Playtime {
	return []models.Playtime{
		{ItemID: "10", ItemName: "Counter-Strike", Minutes: 600, UserID: "u1"},
		{ItemID: "400", ItemName: "Portal", Minutes: 120, UserID: "u1"},
		{ItemID: "105600", ItemName: "Terraria", Minutes: 30, UserID: "u1"},
		{ItemID: "20", ItemName: "Team Fortress Classic", Minutes: 300, UserID: "u2"},
		{ItemID: "105600", ItemName: "Terraria", Minutes: 600, UserID: "u2"},
		{ItemID: "99999", ItemName: "Undated Action", Minutes: 100000, UserID: "u3"},
		{ItemID: "8930", ItemName: "Sid Meier's Civilization V", Minutes: 500, UserID: "u3"},
		{ItemID: "30", ItemName: "Day of Defeat", Minutes: 90, UserID: "u4"},
	}
}

func testReviews() []models.Review {
	return []models.Review{
		review("10", "u1", posted2011, true, models.SentimentPositive),
		review("10", "u2", posted2011, true, models.SentimentNeutral),
		review("10", "u3", posted2011, true, models.SentimentPositive),
		review("20", "u1", posted2011, true, models.SentimentPositive),
		review("20", "u2", posted2011, true, models.SentimentPositive),
		review("400", "u1", posted2011, true, models.SentimentNeutral),
		review("400", "u3", posted2011, true, models.SentimentPositive),
		review("30", "u1", posted2011, true, models.SentimentPositive),
		review("30", "u2", posted2011, false, models.SentimentNegative),
		review("30", "u3", posted2011, false, models.SentimentNegative),
		review("8930", "u1", posted2011, false, models.SentimentNegative),
		review("8930", "u2", posted2011, false, models.SentimentNegative),
		review("105600", "u1", posted2011, false, models.SentimentNegative),
		review("105600", "u2", posted2011, true, models.SentimentNegative),
		review("77777", "u1", posted2011, true, models.SentimentPositive),
		review("77777", "u2", posted2011, true, models.SentimentPositive),
		review("77777", "u3", posted2011, true, models.SentimentPositive),
		review("77777", "u4", posted2011, true, models.SentimentPositive),
		review("77777", "u5", posted2011, true, models.SentimentPositive),
		review("10", "u4", posted2010, true, models.SentimentPositive),
		review("20", "u4", posted2010, false, models.SentimentNeutral),
	}
}

func newTestEngine(t *testing.T, snap *models.Snapshot, cfg config.AnalyticsConfig) *Engine {
	t.Helper()
	idx, err := recommend.Build(context.Background(), snap.Games, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.Build() error = %v", err)
	}
	e, err := NewEngine(snap, idx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	snap := models.NewSnapshot(testGames(), testReviews(), testPlaytime())
	return newTestEngine(t, snap, config.AnalyticsConfig{YearMatch: config.YearMatchParsed})
}

func TestNewEngine_RequiresInputs(t *testing.T) {
	t.Parallel()

	snap := models.NewSnapshot(testGames(), nil, nil)
	idx, err := recommend.Build(context.Background(), snap.Games, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.Build() error = %v", err)
	}

	if _, err := NewEngine(nil, idx, config.AnalyticsConfig{}, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil snapshot) should fail")
	}
	if _, err := NewEngine(snap, nil, config.AnalyticsConfig{}, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil index) should fail")
	}

	e, err := NewEngine(snap, idx, config.AnalyticsConfig{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if e.Snapshot() != snap || e.Index() != idx {
		t.Error("engine should expose the injected snapshot and index")
	}
}
