// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/playstats/internal/models"
)

// Error codes returned in APIError.Code.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeDeveloperNotFound = "DEVELOPER_NOT_FOUND"
	CodeInsufficientData  = "INSUFFICIENT_DATA"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
	CodeRateLimited       = "RATE_LIMITED"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeRouteNotFound     = "ROUTE_NOT_FOUND"
)

// internalErrorMessage replaces the message of unclassified errors so that
// internal details never reach clients.
const internalErrorMessage = "Internal server error"

// statusForError maps an error to its HTTP status and error code.
func statusForError(err error) (int, string) {
	switch models.ErrorKind(err) {
	case models.ErrNotFound:
		if errors.Is(err, models.ErrDeveloperNotFound) {
			return http.StatusNotFound, CodeDeveloperNotFound
		}
		return http.StatusNotFound, CodeNotFound
	case models.ErrInsufficientData:
		return http.StatusUnprocessableEntity, CodeInsufficientData
	case models.ErrValidation:
		return http.StatusBadRequest, CodeValidation
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
