// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

// Playtime is the cumulative play of one user on one game.
// Rows with zero minutes are dropped at ingestion, so Minutes is always >= 1.
type Playtime struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Minutes  int    `json:"playtime_forever"`
	UserID   string `json:"user_id"`
}
