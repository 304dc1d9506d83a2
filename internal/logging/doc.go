// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Package logging provides the zerolog-based structured logging layer for
// Playstats.
//
// A single global logger is configured from the logging section of the
// application config. Components derive child loggers carrying a
// "component" field, and HTTP handlers log through Ctx so that every line
// carries the request ID assigned by the API middleware.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("games", n).Msg("Snapshot loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Query failed")
//
//	log := logging.WithComponent("recommend")
//	log.Debug().Dur("elapsed", d).Msg("Index built")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Suture Integration
//
// The supervisor tree logs through log/slog. NewSlogLogger returns an
// slog.Logger whose handler writes to zerolog, so supervisor events end up
// in the same stream as the rest of the application:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
//
// # Thread Safety
//
// All package functions are safe for concurrent use. Init and SetLogger may
// be called at any time; readers observe either the old or the new logger.
package logging
