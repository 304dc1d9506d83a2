// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import "time"

// Neighbor is one similarity lookup result.
type Neighbor struct {
	// ID is the catalog identifier of the neighbor.
	ID string `json:"id"`

	// Name is the display name of the neighbor.
	Name string `json:"name"`

	// Score is the cosine similarity to the queried entry in [0, 1].
	Score float64 `json:"score"`

	// Position is the neighbor's catalog position.
	Position int `json:"-"`
}

// Stats describes a built index.
type Stats struct {
	Documents     int           `json:"documents"`
	Vocabulary    int           `json:"vocabulary"`
	NonZero       int           `json:"non_zero"`
	MatrixBytes   int64         `json:"matrix_bytes"`
	BuildDuration time.Duration `json:"build_duration"`
	Workers       int           `json:"workers"`
}
