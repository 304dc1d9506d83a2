// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
)

func TestAnalyticsEndpoints_Success(t *testing.T) {
	t.Parallel()

	h := setupTestHandler(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "peak year for genre",
			target: "/api/v1/playtime-genre/Action",
			want:   `{"Release year with most hours played for Genre Action":"2011"}`,
		},
		{
			name:   "top user for genre",
			target: "/api/v1/user-for-genre/Action",
			want:   `{"User with most hours played for Genre Action":"u2","Hours played":[{"Year":2011,"Hours":10},{"Year":1999,"Hours":5}]}`,
		},
		{
			name:   "top recommended games",
			target: "/api/v1/users-recommend/2011",
			want:   `[{"Rank 1":"Counter-Strike"},{"Rank 2":"Team Fortress Classic"},{"Rank 3":"Portal"}]`,
		},
		{
			name:   "worst developers",
			target: "/api/v1/users-worst-developer/2011",
			want:   `[{"Rank 1":"Valve"},{"Rank 2":"Firaxis Games"},{"Rank 3":"Re-Logic"}]`,
		},
		{
			name:   "sentiment breakdown",
			target: "/api/v1/sentiment-analysis/Valve",
			want:   `{"Valve":["Negative = 2","Neutral = 3","Positive = 7"]}`,
		},
		{
			name:   "sentiment for developer without reviews",
			target: "/api/v1/sentiment-analysis/Facepunch%20Studios",
			want:   `{"Facepunch Studios":["Negative = 0","Neutral = 0","Positive = 0"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := get(t, h, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("GET %s status = %d, body = %s", tt.target, w.Code, w.Body.String())
			}
			if got := w.Body.String(); got != tt.want {
				t.Errorf("GET %s body = %s, want %s", tt.target, got, tt.want)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if w.Header().Get("ETag") == "" {
				t.Error("Expected ETag header")
			}
		})
	}
}

func TestGameRecommendation(t *testing.T) {
	t.Parallel()

	h := setupTestHandler(t)

	w := get(t, h, "/api/v1/game-recommendation/10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var entries []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("Failed to decode body %s: %v", w.Body.String(), err)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if len(entry) != 1 {
			t.Fatalf("entry %v should have exactly one key", entry)
		}
		for id := range entry {
			if id == "10" {
				t.Error("recommendations must not include the queried game")
			}
			if seen[id] {
				t.Errorf("duplicate recommendation %q", id)
			}
			seen[id] = true
		}
	}
}

func TestAnalyticsEndpoints_Errors(t *testing.T) {
	t.Parallel()

	h := setupTestHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"unknown genre", "/api/v1/playtime-genre/Sports", http.StatusNotFound, CodeNotFound},
		{"unknown genre top user", "/api/v1/user-for-genre/Sports", http.StatusNotFound, CodeNotFound},
		{"genre is case-sensitive", "/api/v1/playtime-genre/action", http.StatusNotFound, CodeNotFound},
		{"non-numeric year", "/api/v1/users-recommend/abc", http.StatusBadRequest, CodeValidation},
		{"year out of range", "/api/v1/users-recommend/1800", http.StatusBadRequest, CodeValidation},
		{"year with too few games", "/api/v1/users-recommend/2010", http.StatusUnprocessableEntity, CodeInsufficientData},
		{"year without reviews", "/api/v1/users-worst-developer/1999", http.StatusUnprocessableEntity, CodeInsufficientData},
		{"unknown developer", "/api/v1/sentiment-analysis/Unknown", http.StatusNotFound, CodeDeveloperNotFound},
		{"escaped slash in developer", "/api/v1/sentiment-analysis/AC%2FDC", http.StatusNotFound, CodeDeveloperNotFound},
		{"control character in developer", "/api/v1/sentiment-analysis/Val%0Ave", http.StatusBadRequest, CodeValidation},
		{"unknown item", "/api/v1/game-recommendation/123456", http.StatusNotFound, CodeNotFound},
		{"unknown route", "/api/v1/does-not-exist", http.StatusNotFound, CodeRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := get(t, h, tt.target)
			if w.Code != tt.wantStatus {
				t.Fatalf("GET %s status = %d, want %d (body %s)", tt.target, w.Code, tt.wantStatus, w.Body.String())
			}

			response := decodeEnvelope(t, w)
			if response.Status != "error" {
				t.Errorf("Status = %q, want error", response.Status)
			}
			if response.Error == nil {
				t.Fatal("Expected error object")
			}
			if response.Error.Code != tt.wantCode {
				t.Errorf("Error.Code = %q, want %q", response.Error.Code, tt.wantCode)
			}
			if response.Error.Message == "" {
				t.Error("Expected error message")
			}
		})
	}
}

func TestAnalyticsEndpoints_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := setupTestHandler(t)
	req := newRequest(http.MethodPost, "/api/v1/playtime-genre/Action")

	w := serve(t, h, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	if code := decodeEnvelope(t, w).Error.Code; code != CodeMethodNotAllowed {
		t.Errorf("Error.Code = %q, want %q", code, CodeMethodNotAllowed)
	}
}

func TestAnalyticsEndpoints_Idempotent(t *testing.T) {
	t.Parallel()

	// Without a cache every request recomputes the result.
	cfg := testConfig()
	cfg.Analytics.CacheSize = 0
	h := setupTestHandlerWithConfig(t, cfg)

	targets := []string{
		"/api/v1/playtime-genre/Indie",
		"/api/v1/user-for-genre/Action",
		"/api/v1/users-recommend/2011",
		"/api/v1/users-worst-developer/2011",
		"/api/v1/sentiment-analysis/Valve",
		"/api/v1/game-recommendation/400",
	}
	for _, target := range targets {
		first := get(t, h, target)
		if first.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", target, first.Code)
		}
		for i := 0; i < 3; i++ {
			again := get(t, h, target)
			if again.Body.String() != first.Body.String() {
				t.Errorf("GET %s call %d = %s, want %s", target, i+2, again.Body.String(), first.Body.String())
			}
			if again.Header().Get(headerCache) != "MISS" {
				t.Errorf("GET %s X-Cache = %q, want MISS with caching disabled", target, again.Header().Get(headerCache))
			}
		}
	}
}
