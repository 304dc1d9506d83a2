// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"fmt"
	"time"

	"github.com/tomtom215/playstats/internal/models"
)

// SentimentBreakdown counts the reviews of games by developer per sentiment.
// A developer missing from the catalog fails with
// models.ErrDeveloperNotFound; a catalogued developer without reviews gets
// zero counts.
func (e *Engine) SentimentBreakdown(developer string) (result *SentimentResult, err error) {
	defer func(start time.Time) { e.observe(OpSentimentBreakdown, start, err) }(time.Now())

	if _, ok := e.developers[developer]; !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrDeveloperNotFound, developer)
	}

	result = &SentimentResult{Developer: developer}
	for i := range e.snap.Reviews {
		r := &e.snap.Reviews[i]
		for _, pos := range e.catalogByID[r.ItemID] {
			if e.snap.Games[pos].Developer != developer {
				continue
			}
			switch r.Sentiment {
			case models.SentimentNegative:
				result.Negative++
			case models.SentimentNeutral:
				result.Neutral++
			case models.SentimentPositive:
				result.Positive++
			}
		}
	}
	return result, nil
}
