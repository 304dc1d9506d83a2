// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

import (
	"errors"
	"fmt"
)

// Error kinds. Query results are deterministic functions of the snapshot,
// so none of these are retryable.
var (
	// ErrNotFound indicates a lookup key is absent from a required table or
	// a join produced zero rows.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientData indicates a join or grouping produced fewer rows
	// than the operation structurally requires.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrValidation indicates malformed caller input.
	ErrValidation = errors.New("validation failed")
)

// Specific failures, each wrapping one kind.
var (
	ErrGenreNotFound     = fmt.Errorf("%w: no playtime recorded for genre", ErrNotFound)
	ErrDeveloperNotFound = fmt.Errorf("%w: developer not present in dataset", ErrNotFound)
	ErrItemNotFound      = fmt.Errorf("%w: item not present in catalog", ErrNotFound)
)

// ErrorKind returns the kind sentinel wrapped by err, or nil when err is not
// one of the known kinds.
func ErrorKind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrInsufficientData):
		return ErrInsufficientData
	case errors.Is(err, ErrValidation):
		return ErrValidation
	default:
		return nil
	}
}

// KindName returns a short label for the kind of err, used for metrics.
func KindName(err error) string {
	switch ErrorKind(err) {
	case ErrNotFound:
		return "not_found"
	case ErrInsufficientData:
		return "insufficient_data"
	case ErrValidation:
		return "validation"
	default:
		return "internal"
	}
}
