// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package main is the entry point for the Playstats server.

Playstats loads a game catalog, user reviews and per-user playtime from
Parquet files, builds a content-based similarity index over the catalog and
serves six read-only analytics queries over HTTP.

# Startup Sequence

Startup is fail-fast. Any error before the HTTP server starts exits the
process with a non-zero status.

 1. Configuration: defaults, optional config.yaml and environment (Koanf v2)
 2. Logging: zerolog, level and format from configuration
 3. Ingestion: Parquet files imported into DuckDB, normalised, and read into
    an immutable in-memory snapshot; the database is then closed
 4. Index: TF-IDF vectors and the packed cosine similarity matrix, computed
    by a bounded worker pool
 5. Engine and result cache
 6. Supervisor tree with the HTTP server and cache monitor

# Supervisor Tree

	playstats (root)
	├── maintenance-layer
	│   └── cache-monitor      (only when the result cache is enabled)
	└── api-layer
	    └── http-server

# Configuration

Common environment variables:

	DATA_DIR              directory holding the Parquet files (default: data)
	SEED_MOCK_DATA        use the built-in sample dataset instead (default: false)
	HTTP_PORT             listen port (default: 8000)
	ANALYTICS_YEAR_MATCH  parsed or substring (default: parsed)
	ANALYTICS_CACHE_SIZE  memoised results, 0 disables (default: 1024)
	RECOMMEND_WORKERS     index build goroutines, 0 = NumCPU
	LOG_LEVEL             trace, debug, info, warn, error (default: info)
	LOG_FORMAT            json or console (default: json)

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for at most HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

	export DATA_DIR=/srv/playstats/data
	./playstats

	SEED_MOCK_DATA=true LOG_FORMAT=console ./playstats
*/
package main
