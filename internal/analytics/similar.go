// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import "time"

// RecommendSimilar returns the catalog entries most similar to itemID,
// using the index's configured neighbor count.
func (e *Engine) RecommendSimilar(itemID string) (result SimilarGames, err error) {
	defer func(start time.Time) { e.observe(OpRecommendSimilar, start, err) }(time.Now())

	neighbors, err := e.index.Similar(itemID, e.index.TopK())
	if err != nil {
		return nil, err
	}
	return SimilarGames(neighbors), nil
}
