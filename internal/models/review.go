// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package models

import (
	"strconv"
	"strings"
)

// Sentiment is the categorical sentiment label of a review.
type Sentiment int

const (
	// SentimentNegative marks a negative review text.
	SentimentNegative Sentiment = iota
	// SentimentNeutral marks a neutral (or empty) review text.
	SentimentNeutral
	// SentimentPositive marks a positive review text.
	SentimentPositive
)

// String returns the display label used in sentiment breakdowns.
func (s Sentiment) String() string {
	switch s {
	case SentimentNegative:
		return "Negative"
	case SentimentNeutral:
		return "Neutral"
	case SentimentPositive:
		return "Positive"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the three known labels.
func (s Sentiment) Valid() bool {
	return s >= SentimentNegative && s <= SentimentPositive
}

// Review is one user review event. Multiple reviews per (user, item) are
// kept as-is.
type Review struct {
	ItemID    string    `json:"item_id"`
	UserID    string    `json:"user_id"`
	Posted    string    `json:"posted"`
	Recommend bool      `json:"recommend"`
	Sentiment Sentiment `json:"sentiment_analysis"`

	// PostedYear is the first four-digit run found in Posted, or 0.
	// It is derived at ingestion by ExtractYear.
	PostedYear int `json:"posted_year,omitempty"`
}

// PostedIn reports whether the review was posted in year.
// With substring set, the legacy rule applies: the posted text merely has to
// contain the decimal year.
func (r *Review) PostedIn(year int, substring bool) bool {
	if substring {
		return strings.Contains(r.Posted, strconv.Itoa(year))
	}
	return r.PostedYear != 0 && r.PostedYear == year
}

// IsGood reports a recommended review with neutral or positive sentiment.
func (r *Review) IsGood() bool {
	return r.Recommend && (r.Sentiment == SentimentNeutral || r.Sentiment == SentimentPositive)
}

// IsBad reports a not-recommended review with negative sentiment.
func (r *Review) IsBad() bool {
	return !r.Recommend && r.Sentiment == SentimentNegative
}

// ExtractYear returns the first run of exactly four ASCII digits in s, or 0.
//
//	ExtractYear("Posted November 5, 2011.") // 2011
//	ExtractYear("2015-07-10")                // 2015
//	ExtractYear("Posted June 3.")            // 0
func ExtractYear(s string) int {
	run := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			run++
			continue
		}
		if run == 4 {
			year, err := strconv.Atoi(s[i-4 : i])
			if err == nil {
				return year
			}
		}
		run = 0
	}
	return 0
}
