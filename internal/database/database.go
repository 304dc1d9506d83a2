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
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/playstats/internal/config"
	"github.com/tomtom215/playstats/internal/logging"
)

// Normalised table names. Every ingestion path (Parquet import or mock seed)
// produces these three tables with the schema created by createTables.
const (
	tableCatalog  = "catalog"
	tableReviews  = "reviews"
	tablePlaytime = "playtime"
)

// defaultQueryTimeout bounds ingestion statements when the caller's context
// carries no deadline.
const defaultQueryTimeout = 5 * time.Minute

// DB wraps the DuckDB connection used to ingest the dataset snapshot.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens a DuckDB database and creates the normalised snapshot tables.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	// Catalog order is significant (first-match id resolution, tie order),
	// so insertion order must be preserved.
	connStr := fmt.Sprintf("%s?threads=%d&preserve_insertion_order=true", cfg.Path, numThreads)
	if cfg.MaxMemory != "" {
		connStr += "&max_memory=" + cfg.MaxMemory
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}
	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.createTables(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Debug().Str("path", cfg.Path).Int("threads", numThreads).Msg("DuckDB opened")
	return db, nil
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// createTables creates (or recreates) the normalised tables.
// genres and specs are lists; ord records source row order.
func (db *DB) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE OR REPLACE TABLE ` + tableCatalog + ` (
			ord          BIGINT,
			id           VARCHAR,
			app_name     VARCHAR,
			genres       VARCHAR[],
			specs        VARCHAR[],
			developer    VARCHAR,
			release_date VARCHAR
		)`,
		`CREATE OR REPLACE TABLE ` + tableReviews + ` (
			ord                BIGINT,
			item_id            VARCHAR,
			user_id            VARCHAR,
			posted             VARCHAR,
			recommend          BOOLEAN,
			sentiment_analysis INTEGER
		)`,
		`CREATE OR REPLACE TABLE ` + tablePlaytime + ` (
			ord              BIGINT,
			item_id          VARCHAR,
			item_name        VARCHAR,
			playtime_forever BIGINT,
			user_id          VARCHAR
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// ensureContext applies defaultQueryTimeout when ctx has no deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), defaultQueryTimeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, defaultQueryTimeout)
	}
	return ctx, func() {}
}

// RowCounts returns the number of rows in each normalised table.
func (db *DB) RowCounts(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	counts := make(map[string]int64, 3)
	for _, table := range []string{tableCatalog, tableReviews, tablePlaytime} {
		var n int64
		if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
