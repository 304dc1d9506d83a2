// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/models"
	"github.com/tomtom215/playstats/internal/validation"
)

// Response headers carrying query metadata for unwrapped results.
const (
	headerCache     = "X-Cache"
	headerQueryTime = "X-Query-Time-Ms"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// This includes newlines, carriage returns, tabs, and other control characters that could
// allow attackers to forge log entries or corrupt log files.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeJSON marshals v and writes it with the standard headers and an ETag.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON sends an enveloped JSON response.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, status, response)
}

// respondResult sends an unwrapped query result. Metadata travels in headers.
func respondResult(w http.ResponseWriter, result interface{}, meta models.Metadata) {
	cacheStatus := "MISS"
	if meta.Cached {
		cacheStatus = "HIT"
	}
	w.Header().Set(headerCache, cacheStatus)
	w.Header().Set(headerQueryTime, strconv.FormatInt(meta.QueryTimeMS, 10))
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, result)
}

// generateETag creates a weak validator from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondAPIError(w, status, &models.APIError{Code: code, Message: message})
}

func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}

// respondQueryError maps a query or input error to its status and code.
// Expected outcomes (not found, insufficient data, bad input) are logged at
// debug level with the request context; unclassified errors at error level
// with the message withheld from the client.
func respondQueryError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status, code := statusForError(err)
	logger := logging.CtxWith(r.Context()).Str("operation", operation).Logger()

	if status == http.StatusInternalServerError {
		logger.Error().
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Query failed")
		respondAPIError(w, status, &models.APIError{Code: code, Message: internalErrorMessage})
		return
	}

	logger.Debug().
		Str("code", code).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("Query rejected")

	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		respondAPIError(w, status, verr.ToAPIError())
		return
	}
	respondAPIError(w, status, &models.APIError{Code: code, Message: err.Error()})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes. The returned error wraps
// models.ErrValidation and carries field details for the response.
//
// Example:
//
//	req := validation.GenreRequest{Genre: genre}
//	if err := validateRequest(&req); err != nil {
//	    respondQueryError(w, r, op, err)
//	    return
//	}
func validateRequest(v interface{}) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr
	}
	return nil
}

// pathParam returns the decoded value of a route parameter. Chi matches on
// the escaped path when one is present, so the value is unescaped here.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, nil
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", fmt.Errorf("%w: malformed %s in path", models.ErrValidation, name)
	}
	return decoded, nil
}
