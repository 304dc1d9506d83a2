// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tomtom215/playstats/internal/models"
)

// genrePlay is one row of the dated-catalog ⋈ playtime join.
type genrePlay struct {
	userID  string
	year    int
	minutes int64
}

// genreJoin filters the catalog to dated rows matching genre and inner-joins
// the result with playtime on the item identifier. Rows are in playtime
// order; a duplicated catalog identifier yields one row per match.
func (e *Engine) genreJoin(genre string) []genrePlay {
	years := make(map[string][]int)
	for i := range e.snap.Games {
		g := &e.snap.Games[i]
		year, ok := g.ReleaseYear()
		if !ok || !g.MatchesGenre(genre) {
			continue
		}
		years[g.ID] = append(years[g.ID], year)
	}
	if len(years) == 0 {
		return nil
	}

	var joined []genrePlay
	for i := range e.snap.Playtime {
		p := &e.snap.Playtime[i]
		for _, year := range years[p.ItemID] {
			joined = append(joined, genrePlay{
				userID:  p.UserID,
				year:    year,
				minutes: int64(p.Minutes),
			})
		}
	}
	return joined
}

// PeakYearForGenre returns the release year whose games matching genre have
// the most total playtime. Ties go to the earliest year.
func (e *Engine) PeakYearForGenre(genre string) (result *PeakYearResult, err error) {
	defer func(start time.Time) { e.observe(OpPeakYearForGenre, start, err) }(time.Now())

	joined := e.genreJoin(genre)
	if len(joined) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrGenreNotFound, genre)
	}

	byYear := make(map[int]int64)
	for _, row := range joined {
		byYear[row.year] += row.minutes
	}

	best, bestMinutes := 0, int64(-1)
	for _, year := range sortedYears(byYear) {
		if byYear[year] > bestMinutes {
			best, bestMinutes = year, byYear[year]
		}
	}

	return &PeakYearResult{Genre: genre, Year: best, Minutes: bestMinutes}, nil
}

// TopUserForGenre returns the user with the most total playtime on games
// matching genre, with that user's playtime per release year in hours.
// Ties go to the lexicographically smallest user id. Hours are rounded half
// to even.
func (e *Engine) TopUserForGenre(genre string) (result *TopUserResult, err error) {
	defer func(start time.Time) { e.observe(OpTopUserForGenre, start, err) }(time.Now())

	joined := e.genreJoin(genre)
	if len(joined) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrGenreNotFound, genre)
	}

	byUser := make(map[string]int64)
	for _, row := range joined {
		byUser[row.userID] += row.minutes
	}
	users := make([]string, 0, len(byUser))
	for u := range byUser {
		users = append(users, u)
	}
	sort.Strings(users)

	top, topMinutes := "", int64(-1)
	for _, u := range users {
		if byUser[u] > topMinutes {
			top, topMinutes = u, byUser[u]
		}
	}

	byYear := make(map[int]int64)
	for _, row := range joined {
		if row.userID == top {
			byYear[row.year] += row.minutes
		}
	}
	years := sortedYears(byYear)
	hours := make([]YearHours, 0, len(years))
	for i := len(years) - 1; i >= 0; i-- {
		hours = append(hours, YearHours{
			Year:  years[i],
			Hours: minutesToHours(byYear[years[i]]),
		})
	}

	return &TopUserResult{
		Genre:   genre,
		UserID:  top,
		Minutes: topMinutes,
		Hours:   hours,
	}, nil
}

// minutesToHours rounds minutes/60 half to even.
func minutesToHours(minutes int64) int {
	return int(math.RoundToEven(float64(minutes) / 60))
}

func sortedYears(m map[int]int64) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
