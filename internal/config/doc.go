// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package config provides configuration loading and validation for Playstats.

# Configuration Sources

Configuration is layered with koanf v2, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, ./config.yaml, /etc/playstats/config.yaml
 3. Environment variables, mapped explicitly by envTransformFunc

# Sections

  - dataset: data directory and the three Parquet file names, mock seeding
  - database: DuckDB path, memory limit and threads used for ingestion
  - recommend: similarity build workers and result size
  - analytics: review year matching policy and result cache bounds
  - server: HTTP listen address and timeouts
  - security: CORS origins and rate limiting
  - logging: level, format, caller

# Example

	# config.yaml
	dataset:
	  dir: /srv/steam
	analytics:
	  year_match: parsed
	server:
	  port: 8000

Environment overrides use flat names:

	DATA_DIR=/srv/steam HTTP_PORT=9000 LOG_LEVEL=debug ./playstats

Load returns an error when validation fails; callers treat this as fatal.
*/
package config
