// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

import (
	"strings"
	"time"
)

// Game is one catalog entry.
//
// Key Fields:
//   - ID: Store identifier, unique within the catalog (not enforced)
//   - Genres/Specs: Multi-valued tags, kept in source order
//   - ReleaseDate: nil when the source value is absent or unparseable;
//     such games are skipped by year-based queries but still indexed for
//     similarity
type Game struct {
	ID          string     `json:"id"`
	Name        string     `json:"app_name"`
	Genres      []string   `json:"genres"`
	Specs       []string   `json:"specs"`
	Developer   string     `json:"developer"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

// ReleaseYear returns the release year and whether one is known.
func (g *Game) ReleaseYear() (int, bool) {
	if g.ReleaseDate == nil {
		return 0, false
	}
	return g.ReleaseDate.Year(), true
}

// GenreText returns the genres joined by single spaces.
func (g *Game) GenreText() string {
	return strings.Join(g.Genres, " ")
}

// MatchesGenre reports whether genre occurs in the game's genre text.
// Matching is case-sensitive substring matching, so "Action" also matches a
// game tagged "Action-Adventure".
func (g *Game) MatchesGenre(genre string) bool {
	if genre == "" {
		return false
	}
	return strings.Contains(g.GenreText(), genre)
}

// FeatureText returns the text the similarity index vectorizes: genres,
// specs, developer and identifier, in that order, separated by single spaces.
func (g *Game) FeatureText() string {
	var b strings.Builder
	b.WriteString(strings.Join(g.Genres, " "))
	b.WriteByte(' ')
	b.WriteString(strings.Join(g.Specs, " "))
	b.WriteByte(' ')
	b.WriteString(g.Developer)
	b.WriteByte(' ')
	b.WriteString(g.ID)
	return b.String()
}
