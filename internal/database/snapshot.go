// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/metrics"
	"github.com/tomtom215/playstats/internal/models"
)

// LoadSnapshot fills the normalised tables (from Parquet, or from the
// built-in mock dataset when ds.SeedMockData is set) and reads them into an
// immutable snapshot.
func (db *DB) LoadSnapshot(ctx context.Context, ds config.DatasetConfig) (*models.Snapshot, error) {
	start := time.Now()

	if ds.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		if err := db.SeedMockData(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed mock data: %w", err)
		}
	} else {
		logging.Info().
			Str("catalog", ds.CatalogPath()).
			Str("reviews", ds.ReviewsPath()).
			Str("playtime", ds.PlaytimePath()).
			Msg("Importing dataset")
		if err := db.ImportParquet(ctx, ds); err != nil {
			return nil, fmt.Errorf("failed to import dataset: %w", err)
		}
	}

	imported, err := db.RowCounts(ctx)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Int64("games", imported[tableCatalog]).
		Int64("reviews", imported[tableReviews]).
		Int64("playtime", imported[tablePlaytime]).
		Msg("Dataset imported")

	snap, err := db.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordSnapshotLoad(map[string]int{
		tableCatalog:  len(snap.Games),
		tableReviews:  len(snap.Reviews),
		tablePlaytime: len(snap.Playtime),
	}, elapsed)

	logging.Info().
		Int("games", len(snap.Games)).
		Int("reviews", len(snap.Reviews)).
		Int("playtime", len(snap.Playtime)).
		Dur("elapsed", elapsed).
		Msg("Snapshot loaded")
	return snap, nil
}

// Snapshot reads the normalised tables, in source order, into a snapshot.
func (db *DB) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	games, err := db.loadCatalog(ctx)
	metrics.RecordDBQuery("scan", tableCatalog, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	reviews, err := db.loadReviews(ctx)
	metrics.RecordDBQuery("scan", tableReviews, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	playtime, err := db.loadPlaytime(ctx)
	metrics.RecordDBQuery("scan", tablePlaytime, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return models.NewSnapshot(games, reviews, playtime), nil
}

func (db *DB) loadCatalog(ctx context.Context) ([]models.Game, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, app_name, genres, specs, developer, release_date
		FROM `+tableCatalog+`
		ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var (
		games     []models.Game
		undated   int
		badFormat int
	)
	for rows.Next() {
		var (
			id, name, developer, released sql.NullString
			genres, specs                 any
		)
		if err := rows.Scan(&id, &name, &genres, &specs, &developer, &released); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		g := models.Game{
			ID:        id.String,
			Name:      name.String,
			Genres:    toStrings(genres),
			Specs:     toStrings(specs),
			Developer: developer.String,
		}
		date, ok := parseReleaseDate(released.String)
		switch {
		case ok:
			g.ReleaseDate = date
		case strings.TrimSpace(released.String) == "":
			undated++
		default:
			badFormat++
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if undated+badFormat > 0 {
		logging.Debug().
			Int("missing", undated).
			Int("unparseable", badFormat).
			Msg("Catalog rows without a usable release date are excluded from year queries")
	}
	return games, nil
}

func (db *DB) loadReviews(ctx context.Context) ([]models.Review, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT item_id, user_id, posted, recommend, sentiment_analysis
		FROM `+tableReviews+`
		ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var (
		reviews []models.Review
		skipped int
	)
	for rows.Next() {
		var (
			itemID, userID, posted sql.NullString
			recommend              sql.NullBool
			sentiment              sql.NullInt32
		)
		if err := rows.Scan(&itemID, &userID, &posted, &recommend, &sentiment); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}

		label := models.Sentiment(sentiment.Int32)
		if !sentiment.Valid || !label.Valid() {
			skipped++
			continue
		}
		reviews = append(reviews, models.Review{
			ItemID:     itemID.String,
			UserID:     userID.String,
			Posted:     posted.String,
			PostedYear: models.ExtractYear(posted.String),
			Recommend:  recommend.Valid && recommend.Bool,
			Sentiment:  label,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	if skipped > 0 {
		metrics.RecordSkippedRows(tableReviews, "invalid_sentiment", skipped)
		logging.Warn().Int("skipped", skipped).Msg("Reviews with an unknown sentiment label were dropped")
	}
	return reviews, nil
}

func (db *DB) loadPlaytime(ctx context.Context) ([]models.Playtime, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT item_id, item_name, playtime_forever, user_id
		FROM `+tablePlaytime+`
		WHERE playtime_forever > 0
		ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("failed to query playtime: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var records []models.Playtime
	for rows.Next() {
		var (
			itemID, itemName, userID sql.NullString
			minutes                  int64
		)
		if err := rows.Scan(&itemID, &itemName, &minutes, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan playtime row: %w", err)
		}
		records = append(records, models.Playtime{
			ItemID:   itemID.String,
			ItemName: itemName.String,
			Minutes:  int(minutes),
			UserID:   userID.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playtime: %w", err)
	}
	return records, nil
}

// parseReleaseDate parses a free-form release date. Dates are interpreted
// in UTC so the calendar year never shifts with the server time zone.
func parseReleaseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// toStrings converts a scanned LIST value to a string slice, dropping empty
// and NULL elements.
func toStrings(v any) []string {
	var out []string
	switch list := v.(type) {
	case nil:
		return nil
	case []any:
		out = make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	case []string:
		out = make([]string, 0, len(list))
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
	case string:
		out = strings.Fields(list)
	}
	return out
}
