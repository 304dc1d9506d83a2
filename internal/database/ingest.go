// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/metrics"
)

// parquetSource describes one Parquet file and the column types DuckDB
// reports for it.
type parquetSource struct {
	path    string
	columns map[string]string // lowercase name -> DuckDB type
}

// ImportParquet loads the three dataset files into the normalised tables,
// replacing any previous contents. Column types are inspected first so that
// identifiers stored as numbers and multi-valued columns stored either as
// whitespace-joined text or as lists both normalise to the same schema.
// Playtime rows with zero minutes are not imported.
func (db *DB) ImportParquet(ctx context.Context, ds config.DatasetConfig) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	catalog, err := db.describeParquet(ctx, ds.CatalogPath())
	if err != nil {
		return err
	}
	reviews, err := db.describeParquet(ctx, ds.ReviewsPath())
	if err != nil {
		return err
	}
	playtime, err := db.describeParquet(ctx, ds.PlaytimePath())
	if err != nil {
		return err
	}

	catalogSQL, err := catalog.catalogInsert()
	if err != nil {
		return err
	}
	reviewsSQL, err := reviews.reviewsInsert()
	if err != nil {
		return err
	}
	playtimeSQL, err := playtime.playtimeInsert()
	if err != nil {
		return err
	}

	if err := db.createTables(ctx); err != nil {
		return err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	for _, stmt := range []struct{ table, sql string }{
		{tableCatalog, catalogSQL},
		{tableReviews, reviewsSQL},
		{tablePlaytime, playtimeSQL},
	} {
		stmtStart := time.Now()
		res, err := tx.ExecContext(ctx, stmt.sql)
		metrics.RecordDBQuery("import", stmt.table, time.Since(stmtStart), err)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to import %s: %w", stmt.table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			logging.Debug().Str("table", stmt.table).Int64("rows", n).Msg("Imported Parquet table")
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// describeParquet returns the column types of a Parquet file.
func (db *DB) describeParquet(ctx context.Context, path string) (*parquetSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", path, err)
	}

	rows, err := db.conn.QueryContext(ctx, "DESCRIBE SELECT * FROM read_parquet("+sqlLiteral(path)+")")
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", path, err)
	}

	src := &parquetSource{path: path, columns: make(map[string]string)}
	for rows.Next() {
		// column_name, column_type, null, key, default, extra
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan schema of %s: %w", path, err)
		}
		src.columns[strings.ToLower(values[0].String)] = strings.ToUpper(values[1].String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schema of %s: %w", path, err)
	}
	return src, nil
}

func (s *parquetSource) require(names ...string) error {
	for _, name := range names {
		if _, ok := s.columns[name]; !ok {
			return fmt.Errorf("%s: %w: %s", s.path, ErrMissingColumn, name)
		}
	}
	return nil
}

func (s *parquetSource) from() string {
	return "read_parquet(" + sqlLiteral(s.path) + ", file_row_number = true)"
}

// idExpr renders an identifier column as text. Floating point identifiers
// (a common artefact of dataframe exports) are truncated to integers first.
func (s *parquetSource) idExpr(name string) string {
	col := quoteIdent(name)
	typ := s.columns[name]
	switch {
	case typ == "VARCHAR":
		return "trim(" + col + ")"
	case typ == "DOUBLE", typ == "FLOAT", typ == "REAL", strings.HasPrefix(typ, "DECIMAL"):
		return "CAST(CAST(" + col + " AS BIGINT) AS VARCHAR)"
	default:
		return "CAST(" + col + " AS VARCHAR)"
	}
}

// textExpr renders an optional column as text, NULL when absent.
func (s *parquetSource) textExpr(name string) string {
	if _, ok := s.columns[name]; !ok {
		return "CAST(NULL AS VARCHAR)"
	}
	return "CAST(" + quoteIdent(name) + " AS VARCHAR)"
}

// listExpr renders a multi-valued column as VARCHAR[]. Text columns are
// split on runs of whitespace.
func (s *parquetSource) listExpr(name string) string {
	typ, ok := s.columns[name]
	if !ok {
		return "CAST([] AS VARCHAR[])"
	}
	col := quoteIdent(name)
	if strings.HasSuffix(typ, "[]") {
		return "CAST(" + col + " AS VARCHAR[])"
	}
	return "string_split(trim(regexp_replace(coalesce(CAST(" + col + " AS VARCHAR), ''), '\\s+', ' ', 'g')), ' ')"
}

func (s *parquetSource) catalogInsert() (string, error) {
	if err := s.require("id", "genres", "developer"); err != nil {
		return "", err
	}
	return fmt.Sprintf(`INSERT INTO %s
		SELECT file_row_number, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NOT NULL`,
		tableCatalog,
		s.idExpr("id"),
		s.textExpr("app_name"),
		s.listExpr("genres"),
		s.listExpr("specs"),
		s.textExpr("developer"),
		s.textExpr("release_date"),
		s.from(),
		quoteIdent("id"),
	), nil
}

func (s *parquetSource) reviewsInsert() (string, error) {
	if err := s.require("item_id", "user_id", "posted", "recommend", "sentiment_analysis"); err != nil {
		return "", err
	}
	recommend := quoteIdent("recommend")
	if s.columns["recommend"] != "BOOLEAN" {
		recommend = "coalesce(TRY_CAST(" + recommend + " AS BOOLEAN), false)"
	}
	return fmt.Sprintf(`INSERT INTO %s
		SELECT file_row_number, %s, %s, %s, %s, TRY_CAST(%s AS INTEGER)
		FROM %s
		WHERE %s IS NOT NULL`,
		tableReviews,
		s.idExpr("item_id"),
		s.textExpr("user_id"),
		s.textExpr("posted"),
		recommend,
		quoteIdent("sentiment_analysis"),
		s.from(),
		quoteIdent("item_id"),
	), nil
}

func (s *parquetSource) playtimeInsert() (string, error) {
	if err := s.require("item_id", "playtime_forever", "user_id"); err != nil {
		return "", err
	}
	return fmt.Sprintf(`INSERT INTO %s
		SELECT file_row_number, %s, %s, TRY_CAST(%s AS BIGINT), %s
		FROM %s
		WHERE %s IS NOT NULL AND TRY_CAST(%s AS BIGINT) > 0`,
		tablePlaytime,
		s.idExpr("item_id"),
		s.textExpr("item_name"),
		quoteIdent("playtime_forever"),
		s.textExpr("user_id"),
		s.from(),
		quoteIdent("item_id"),
		quoteIdent("playtime_forever"),
	), nil
}

// sqlLiteral quotes s as a SQL string literal.
func sqlLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdent quotes s as a SQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
