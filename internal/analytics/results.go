// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package analytics

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/playstats/internal/recommend"
)

// Response labels.
const (
	peakYearLabel    = "Release year with most hours played for Genre "
	topUserLabel     = "User with most hours played for Genre "
	hoursPlayedLabel = "Hours played"
	rankLabel        = "Rank "
)

// PeakYearResult is the answer to PeakYearForGenre.
//
// JSON: {"Release year with most hours played for Genre Action": "2013"}
type PeakYearResult struct {
	Genre   string
	Year    int
	Minutes int64
}

// MarshalJSON encodes the result as a single labelled entry.
func (r PeakYearResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		peakYearLabel + r.Genre: strconv.Itoa(r.Year),
	})
}

// YearHours is one row of a per-year playtime breakdown.
type YearHours struct {
	Year  int `json:"Year"`
	Hours int `json:"Hours"`
}

// TopUserResult is the answer to TopUserForGenre. Hours is ordered by year
// descending.
//
// JSON: {"User with most hours played for Genre Action": "uid",
// "Hours played": [{"Year": 2013, "Hours": 203}]}
type TopUserResult struct {
	Genre   string
	UserID  string
	Minutes int64
	Hours   []YearHours
}

// MarshalJSON encodes the user label before the breakdown.
func (r TopUserResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeEntry(&buf, topUserLabel+r.Genre, r.UserID); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	hours := r.Hours
	if hours == nil {
		hours = []YearHours{}
	}
	if err := writeEntry(&buf, hoursPlayedLabel, hours); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Ranking is an ordered list of names for ranked queries.
//
// JSON: [{"Rank 1": "a"}, {"Rank 2": "b"}, {"Rank 3": "c"}]
type Ranking []string

// MarshalJSON encodes each name under its one-based rank label.
func (r Ranking) MarshalJSON() ([]byte, error) {
	out := make([]map[string]string, len(r))
	for i, name := range r {
		out[i] = map[string]string{rankLabel + strconv.Itoa(i+1): name}
	}
	return json.Marshal(out)
}

// SentimentResult is the answer to SentimentBreakdown.
//
// JSON: {"Valve": ["Negative = 182", "Neutral = 120", "Positive = 278"]}
type SentimentResult struct {
	Developer string
	Negative  int
	Neutral   int
	Positive  int
}

// Labels returns the counts in fixed Negative, Neutral, Positive order.
func (r SentimentResult) Labels() []string {
	return []string{
		fmt.Sprintf("Negative = %d", r.Negative),
		fmt.Sprintf("Neutral = %d", r.Neutral),
		fmt.Sprintf("Positive = %d", r.Positive),
	}
}

// MarshalJSON encodes the labels under the developer name.
func (r SentimentResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{r.Developer: r.Labels()})
}

// SimilarGames is the answer to RecommendSimilar, most similar first.
//
// JSON: [{"620": "Portal 2"}, ...]
type SimilarGames []recommend.Neighbor

// MarshalJSON encodes each neighbor as an id to name entry.
func (s SimilarGames) MarshalJSON() ([]byte, error) {
	out := make([]map[string]string, len(s))
	for i, n := range s {
		out[i] = map[string]string{n.ID: n.Name}
	}
	return json.Marshal(out)
}

func writeEntry(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
