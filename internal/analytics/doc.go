// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package analytics implements the query engine: aggregation queries over the
immutable snapshot and similarity lookups against the precomputed index.

# Operations

  - PeakYearForGenre: release year with the most playtime for a genre
  - TopUserForGenre: user with the most playtime for a genre, with a
    per-year hours breakdown
  - TopRecommendedGames: three games with the most positive recommendations
    posted in a year
  - WorstDevelopers: developers of the three games with the most negative
    reviews posted in a year
  - SentimentBreakdown: negative/neutral/positive review counts for a developer
  - RecommendSimilar: the most similar catalog entries to an item

# Joins

Joins are inner equality joins on the item identifier. A duplicated catalog
identifier fans the join out, so a playtime or review row is counted once per
matching catalog row.

# Tie-breaking

Every ranking has a deterministic secondary key:
  - Peak year: earliest year wins
  - Top user: lexicographically smallest user id wins
  - Ranked games and developers: ascending item id (numeric ids compare by
    value and sort before non-numeric ids)
  - Similar items: catalog order

# Errors

Failures wrap the kinds in the models package: models.ErrGenreNotFound and
models.ErrDeveloperNotFound (NotFound kind), models.ErrInsufficientData when
fewer than three ranked rows survive a join, models.ErrItemNotFound for
unknown similarity lookups.

# Thread Safety

The engine holds no mutable state after NewEngine returns. All methods are
safe for concurrent use without locking.
*/
package analytics
