// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/playstats/internal/models"
)

// Year bounds accepted by the year endpoints.
const (
	MinYear = 1970
	MaxYear = 2100
)

// GenreRequest is the path input of the genre endpoints.
type GenreRequest struct {
	Genre string `validate:"required,max=100,nocontrol"`
}

// YearRequest is the path input of the year endpoints.
type YearRequest struct {
	Year int `validate:"gte=1970,lte=2100"`
}

// DeveloperRequest is the path input of the sentiment endpoint.
type DeveloperRequest struct {
	Developer string `validate:"required,max=200,nocontrol"`
}

// ItemRequest is the path input of the recommendation endpoint.
type ItemRequest struct {
	ItemID string `validate:"required,max=64,nocontrol"`
}

// ParseYear parses a decimal year path segment. Non-numeric input fails with
// an error wrapping models.ErrValidation.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: year must be an integer, got %q", models.ErrValidation, s)
	}
	return year, nil
}
