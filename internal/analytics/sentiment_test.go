// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/playstats/internal/models"
)

func TestSentimentBreakdown(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)

	tests := []struct {
		developer string
		want      []string
	}{
		{"Valve", []string{"Negative = 2", "Neutral = 3", "Positive = 7"}},
		{"Firaxis Games", []string{"Negative = 2", "Neutral = 0", "Positive = 0"}},
		{"Re-Logic", []string{"Negative = 2", "Neutral = 0", "Positive = 0"}},
		{"Facepunch Studios", []string{"Negative = 0", "Neutral = 0", "Positive = 0"}},
	}
	for _, tt := range tests {
		t.Run(tt.developer, func(t *testing.T) {
			t.Parallel()
			got, err := e.SentimentBreakdown(tt.developer)
			if err != nil {
				t.Fatalf("SentimentBreakdown(%q) error = %v", tt.developer, err)
			}
			if got.Developer != tt.developer {
				t.Errorf("Developer = %q, want %q", got.Developer, tt.developer)
			}
			if !reflect.DeepEqual(got.Labels(), tt.want) {
				t.Errorf("Labels() = %v, want %v", got.Labels(), tt.want)
			}
		})
	}
}

func TestSentimentBreakdown_UnknownDeveloper(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)

	for _, dev := range []string{"Ubisoft", "valve", ""} {
		_, err := e.SentimentBreakdown(dev)
		if !errors.Is(err, models.ErrDeveloperNotFound) {
			t.Errorf("SentimentBreakdown(%q) error = %v, want ErrDeveloperNotFound", dev, err)
		}
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("SentimentBreakdown(%q) should be NotFound kind", dev)
		}
		if errors.Is(err, models.ErrGenreNotFound) {
			t.Errorf("SentimentBreakdown(%q) must be distinguishable from genre errors", dev)
		}
	}
}
