// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/playstats/internal/models"
)

// itemCount is a per-item flag count for one posting year.
type itemCount struct {
	itemID string
	count  int
}

// TopRecommendedGames returns the names of the three games with the most
// recommended, non-negative reviews posted in year.
func (e *Engine) TopRecommendedGames(year int) (result Ranking, err error) {
	defer func(start time.Time) { e.observe(OpTopRecommendedGames, start, err) }(time.Now())

	ranked := e.rankItems(year, (*models.Review).IsGood)
	names := e.joinRanked(ranked, func(g *models.Game) string { return g.Name })
	if len(names) < rankedCount {
		return nil, fmt.Errorf("%w: %d recommended games for %d, need %d",
			models.ErrInsufficientData, len(names), year, rankedCount)
	}
	return Ranking(names), nil
}

// WorstDevelopers returns the developers of the three games with the most
// not-recommended, negative reviews posted in year. A developer appears once
// per ranked game.
func (e *Engine) WorstDevelopers(year int) (result Ranking, err error) {
	defer func(start time.Time) { e.observe(OpWorstDevelopers, start, err) }(time.Now())

	ranked := e.rankItems(year, (*models.Review).IsBad)
	devs := e.joinRanked(ranked, func(g *models.Game) string { return g.Developer })
	if len(devs) < rankedCount {
		return nil, fmt.Errorf("%w: %d ranked developers for %d, need %d",
			models.ErrInsufficientData, len(devs), year, rankedCount)
	}
	return Ranking(devs), nil
}

// rankItems counts flagged reviews per item among reviews posted in year.
// Every item reviewed that year is ranked, including items with a zero
// count. Order is count descending, then item id ascending.
func (e *Engine) rankItems(year int, flag func(*models.Review) bool) []itemCount {
	counts := make(map[string]int)
	for i := range e.snap.Reviews {
		r := &e.snap.Reviews[i]
		if !r.PostedIn(year, e.substringYears) {
			continue
		}
		n := counts[r.ItemID]
		if flag(r) {
			n++
		}
		counts[r.ItemID] = n
	}

	ranked := make([]itemCount, 0, len(counts))
	for id, n := range counts {
		ranked = append(ranked, itemCount{itemID: id, count: n})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].count != ranked[b].count {
			return ranked[a].count > ranked[b].count
		}
		return lessItemID(ranked[a].itemID, ranked[b].itemID)
	})
	return ranked
}

// joinRanked inner-joins ranked items with the catalog, keeping rank order,
// and returns the first rankedCount projected values.
func (e *Engine) joinRanked(ranked []itemCount, project func(*models.Game) string) []string {
	out := make([]string, 0, rankedCount)
	for _, item := range ranked {
		for _, pos := range e.catalogByID[item.itemID] {
			out = append(out, project(&e.snap.Games[pos]))
			if len(out) == rankedCount {
				return out
			}
		}
	}
	return out
}

// lessItemID orders numeric identifiers by value before non-numeric ones,
// which are ordered lexically.
func lessItemID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return strings.Compare(a, b) < 0
	}
}
