// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/playstats/internal/logging"
)

type mockGame struct {
	id, name  string
	genres    []string
	specs     []string
	developer string
	released  string
}

type mockReview struct {
	itemID, userID, posted string
	recommend              bool
	sentiment              int
}

type mockPlaytimeRow struct {
	itemID, itemName string
	minutes          int
	userID           string
}

// mockCatalog is a small, fixed catalog shaped like the public Steam dataset.
var mockCatalog = []mockGame{
	{"10", "Counter-Strike", []string{"Action"}, []string{"Multi-player", "Valve Anti-Cheat enabled"}, "Valve", "2000-11-01"},
	{"20", "Team Fortress Classic", []string{"Action"}, []string{"Multi-player", "Valve Anti-Cheat enabled"}, "Valve", "1999-04-01"},
	{"70", "Half-Life", []string{"Action"}, []string{"Single-player", "Multi-player"}, "Valve", "1998-11-08"},
	{"220", "Half-Life 2", []string{"Action"}, []string{"Single-player", "Steam Achievements"}, "Valve", "2004-11-16"},
	{"620", "Portal 2", []string{"Action", "Adventure"}, []string{"Single-player", "Co-op", "Steam Achievements"}, "Valve", "2011-04-18"},
	{"105600", "Terraria", []string{"Action", "Adventure", "Indie", "RPG"}, []string{"Single-player", "Multi-player", "Co-op"}, "Re-Logic", "2011-05-16"},
	{"211820", "Starbound", []string{"Action", "Adventure", "Casual", "Indie", "RPG"}, []string{"Single-player", "Multi-player", "Co-op"}, "Chucklefish", "2016-07-22"},
	{"252490", "Rust", []string{"Action", "Adventure", "Indie", "Massively Multiplayer", "RPG"}, []string{"Multi-player", "Online Multi-Player"}, "Facepunch Studios", "2018-02-08"},
	{"4000", "Garry's Mod", []string{"Indie", "Simulation"}, []string{"Single-player", "Multi-player", "Co-op"}, "Facepunch Studios", "2006-11-29"},
	{"377160", "Fallout 4", []string{"RPG"}, []string{"Single-player", "Steam Achievements"}, "Bethesda Game Studios", "2015-11-09"},
	{"8930", "Sid Meier's Civilization V", []string{"Strategy"}, []string{"Single-player", "Multi-player"}, "Firaxis Games", "2010-09-21"},
	{"99999", "Untitled Prototype", []string{"Indie"}, []string{"Single-player"}, "Tiny Studio", ""},
}

var mockReviews = []mockReview{
	{"620", "76561197970982479", "Posted November 5, 2011.", true, 2},
	{"620", "js41637", "Posted June 24, 2014.", true, 2},
	{"620", "evcentric", "Posted February 3, 2014.", true, 1},
	{"105600", "js41637", "Posted August 3, 2014.", true, 2},
	{"105600", "doctr", "Posted October 14, 2014.", true, 1},
	{"105600", "maplemage", "Posted April 15, 2014.", true, 2},
	{"105600", "wayfeng", "Posted July 2, 2014.", true, 2},
	{"211820", "76561197970982479", "Posted July 15, 2014.", true, 2},
	{"211820", "doctr", "Posted December 1, 2014.", false, 0},
	{"252490", "evcentric", "Posted March 9, 2014.", false, 0},
	{"252490", "maplemage", "Posted May 20, 2014.", false, 0},
	{"252490", "wayfeng", "Posted January 11, 2014.", false, 1},
	{"4000", "doctr", "Posted September 8, 2014.", true, 2},
	{"4000", "js41637", "Posted November 29, 2014.", false, 0},
	{"377160", "maplemage", "Posted November 12, 2015.", true, 2},
	{"377160", "wayfeng", "Posted December 3, 2015.", false, 0},
	{"377160", "evcentric", "Posted November 20, 2015.", true, 1},
	{"10", "76561197970982479", "Posted February 1, 2011.", true, 1},
	{"70", "js41637", "Posted March 14, 2011.", true, 2},
	{"220", "doctr", "Posted May 5, 2011.", false, 0},
	{"8930", "evcentric", "Posted June 30, 2015.", true, 2},
	{"8930", "doctr", "Posted October 10, 2015.", true, 2},
}

var mockPlaytime = []mockPlaytimeRow{
	{"10", "Counter-Strike", 6, "76561197970982479"},
	{"10", "Counter-Strike", 1205, "js41637"},
	{"20", "Team Fortress Classic", 0, "js41637"},
	{"70", "Half-Life", 312, "doctr"},
	{"220", "Half-Life 2", 1540, "doctr"},
	{"620", "Portal 2", 820, "76561197970982479"},
	{"620", "Portal 2", 455, "evcentric"},
	{"105600", "Terraria", 12210, "js41637"},
	{"105600", "Terraria", 3045, "maplemage"},
	{"211820", "Starbound", 2700, "76561197970982479"},
	{"252490", "Rust", 9310, "evcentric"},
	{"252490", "Rust", 180, "wayfeng"},
	{"4000", "Garry's Mod", 2140, "doctr"},
	{"377160", "Fallout 4", 8410, "maplemage"},
	{"8930", "Sid Meier's Civilization V", 15230, "evcentric"},
	{"99999", "Untitled Prototype", 45, "wayfeng"},
}

// SeedMockData replaces the normalised tables with a small built-in dataset.
// Intended for local development and demos without the Parquet files.
func (db *DB) SeedMockData(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	logging.Info().Msg("Seeding database with mock data...")

	if err := db.createTables(ctx); err != nil {
		return err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Lists are passed as '|'-joined text and split in SQL.
	for i, g := range mockCatalog {
		var released any
		if g.released != "" {
			released = g.released
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+tableCatalog+` VALUES (?, ?, ?, string_split(?, '|'), string_split(?, '|'), ?, ?)`,
			i, g.id, g.name, strings.Join(g.genres, "|"), strings.Join(g.specs, "|"), g.developer, released,
		); err != nil {
			return fmt.Errorf("failed to seed game %s: %w", g.id, err)
		}
	}

	for i, r := range mockReviews {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+tableReviews+` VALUES (?, ?, ?, ?, ?, ?)`,
			i, r.itemID, r.userID, r.posted, r.recommend, r.sentiment,
		); err != nil {
			return fmt.Errorf("failed to seed review %d: %w", i, err)
		}
	}

	// Zero-minute rows are filtered here exactly as the Parquet import does.
	seeded := 0
	for i, p := range mockPlaytime {
		if p.minutes <= 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+tablePlaytime+` VALUES (?, ?, ?, ?, ?)`,
			i, p.itemID, p.itemName, p.minutes, p.userID,
		); err != nil {
			return fmt.Errorf("failed to seed playtime %d: %w", i, err)
		}
		seeded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mock data: %w", err)
	}

	logging.Info().
		Int("games", len(mockCatalog)).
		Int("reviews", len(mockReviews)).
		Int("playtime", seeded).
		Msg("Mock data seeded")
	return nil
}
