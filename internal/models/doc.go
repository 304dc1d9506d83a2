// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package models defines data structures for the Playstats application.

This package contains the snapshot tables served by the query layer, the
error kinds shared by the analytics and recommendation engines, and the API
response envelope. It serves as the single source of truth for data
structure definitions.

Key Components:

  - Game: Catalog entry (genres, specs, developer, optional release date)
  - Review: User review event (recommend flag, sentiment label, posted text)
  - Playtime: Cumulative minutes a user played a game (always >= 1)
  - Snapshot: The three tables above, loaded once and never mutated
  - APIResponse: Standardized API response wrapper for health and error bodies

Error Kinds:

Every query failure wraps exactly one of ErrNotFound, ErrInsufficientData or
ErrValidation, so callers classify errors with errors.Is:

	if errors.Is(err, models.ErrNotFound) {
	    // 404
	}

More specific errors (ErrGenreNotFound, ErrDeveloperNotFound,
ErrItemNotFound) wrap a kind and remain distinguishable on their own.

Thread Safety:

Snapshot and its tables are immutable after construction and safe for
concurrent reads from any number of goroutines.
*/
package models
