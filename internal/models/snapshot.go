// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

import "time"

// Snapshot holds the three dataset tables.
// It is built once during startup and must not be modified afterwards;
// every query engine receives it by injection and reads it concurrently.
type Snapshot struct {
	Games    []Game
	Reviews  []Review
	Playtime []Playtime
	LoadedAt time.Time
}

// NewSnapshot wraps the given tables. The slices are retained, not copied.
func NewSnapshot(games []Game, reviews []Review, playtime []Playtime) *Snapshot {
	return &Snapshot{
		Games:    games,
		Reviews:  reviews,
		Playtime: playtime,
		LoadedAt: time.Now(),
	}
}

// SnapshotStats summarises a snapshot for diagnostics.
type SnapshotStats struct {
	Games          int       `json:"games"`
	DatedGames     int       `json:"dated_games"`
	Developers     int       `json:"developers"`
	Reviews        int       `json:"reviews"`
	Playtime       int       `json:"playtime_records"`
	PlaytimeUsers  int       `json:"playtime_users"`
	PlaytimeMinute int64     `json:"playtime_minutes"`
	LoadedAt       time.Time `json:"loaded_at"`
}

// Stats computes row counts and distinct-key counts for s.
func (s *Snapshot) Stats() SnapshotStats {
	stats := SnapshotStats{
		Games:    len(s.Games),
		Reviews:  len(s.Reviews),
		Playtime: len(s.Playtime),
		LoadedAt: s.LoadedAt,
	}

	developers := make(map[string]struct{})
	for i := range s.Games {
		if _, ok := s.Games[i].ReleaseYear(); ok {
			stats.DatedGames++
		}
		developers[s.Games[i].Developer] = struct{}{}
	}
	stats.Developers = len(developers)

	users := make(map[string]struct{})
	for i := range s.Playtime {
		users[s.Playtime[i].UserID] = struct{}{}
		stats.PlaytimeMinute += int64(s.Playtime[i].Minutes)
	}
	stats.PlaytimeUsers = len(users)

	return stats
}
