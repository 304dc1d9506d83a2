// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/metrics"
	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/recommend"
)

// Operation names, used as metric labels and cache key prefixes.
const (
	OpPeakYearForGenre    = "PeakYearForGenre"
	OpTopUserForGenre     = "TopUserForGenre"
	OpTopRecommendedGames = "TopRecommendedGames"
	OpWorstDevelopers     = "WorstDevelopers"
	OpSentimentBreakdown  = "SentimentBreakdown"
	OpRecommendSimilar    = "RecommendSimilar"
)

// rankedCount is the number of entries returned by ranked queries.
const rankedCount = 3

// Engine answers analytics queries over one snapshot.
type Engine struct {
	snap           *models.Snapshot
	index          *recommend.Index
	substringYears bool
	logger         zerolog.Logger

	// catalogByID maps an identifier to every catalog position holding it,
	// in catalog order.
	catalogByID map[string][]int
	developers  map[string]struct{}
}

// NewEngine creates a query engine over snap and index. Both must be fully
// built; neither is modified afterwards.
func NewEngine(snap *models.Snapshot, index *recommend.Index, cfg config.AnalyticsConfig, logger zerolog.Logger) (*Engine, error) {
	if snap == nil {
		return nil, errors.New("snapshot is required")
	}
	if index == nil {
		return nil, errors.New("similarity index is required")
	}

	e := &Engine{
		snap:           snap,
		index:          index,
		substringYears: cfg.SubstringYearMatch(),
		logger:         logger.With().Str("component", "analytics").Logger(),
		catalogByID:    make(map[string][]int, len(snap.Games)),
		developers:     make(map[string]struct{}),
	}
	for i := range snap.Games {
		g := &snap.Games[i]
		e.catalogByID[g.ID] = append(e.catalogByID[g.ID], i)
		e.developers[g.Developer] = struct{}{}
	}

	e.logger.Debug().
		Int("catalog_ids", len(e.catalogByID)).
		Int("developers", len(e.developers)).
		Bool("substring_year_match", e.substringYears).
		Msg("Analytics engine ready")
	return e, nil
}

// Snapshot returns the snapshot the engine reads.
func (e *Engine) Snapshot() *models.Snapshot {
	return e.snap
}

// Index returns the similarity index the engine reads.
func (e *Engine) Index() *recommend.Index {
	return e.index
}

// observe records the duration and outcome of an operation.
func (e *Engine) observe(op string, start time.Time, err error) {
	metrics.RecordQuery(op, time.Since(start), err)
	if err != nil && models.ErrorKind(err) == nil {
		e.logger.Error().Err(err).Str("operation", op).Msg("Query failed")
	}
}
