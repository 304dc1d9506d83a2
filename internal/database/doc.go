// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package database ingests the game dataset through an in-process DuckDB
database and produces the immutable snapshot served by the query engines.

# Pipeline

	db, err := database.New(&cfg.Database)
	snap, err := db.LoadSnapshot(ctx, cfg.Dataset)

LoadSnapshot runs in two steps:

 1. ImportParquet (or SeedMockData) fills three normalised tables,
    catalog, reviews and playtime, from read_parquet. Source schemas are
    inspected with DESCRIBE so that numeric identifiers and multi-valued
    columns stored either as text or as lists all normalise to VARCHAR and
    VARCHAR[]. Playtime rows with zero minutes are dropped here.
 2. Snapshot scans the tables in source row order into models types. Release
    dates are parsed with dateparse (nil when unparseable) and the posted
    year of each review is extracted once.

The database is only used during startup. Queries never touch DuckDB; they
read the snapshot held in memory.
*/
package database
