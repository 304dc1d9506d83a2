// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/playstats/internal/models"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, nil, testConfig(), "test")
	w := httptest.NewRecorder()
	h.HealthLive(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	response := decodeEnvelope(t, w)
	if response.Status != "success" {
		t.Errorf("Status = %q, want success", response.Status)
	}
	data, ok := response.Data.(map[string]interface{})
	if !ok || data["alive"] != true {
		t.Errorf("Data = %v, want alive=true", response.Data)
	}
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) (string, models.HealthStatus) {
	t.Helper()
	var response struct {
		Status string              `json:"status"`
		Data   models.HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return response.Status, response.Data
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		w := get(t, setupTestHandler(t), "/api/v1/health/ready")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		status, health := decodeHealth(t, w)
		if status != "ready" || health.Status != "ready" {
			t.Errorf("status = %q/%q, want ready", status, health.Status)
		}
		if health.IndexedGames != 8 {
			t.Errorf("IndexedGames = %d, want 8", health.IndexedGames)
		}
		if health.SnapshotRows != 8+16+8 {
			t.Errorf("SnapshotRows = %d, want 32", health.SnapshotRows)
		}
		if health.Version != "test" {
			t.Errorf("Version = %q, want test", health.Version)
		}
	})

	t.Run("not ready without engine", func(t *testing.T) {
		t.Parallel()
		h := NewHandler(nil, nil, testConfig(), "test")
		w := httptest.NewRecorder()
		h.HealthReady(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
		status, health := decodeHealth(t, w)
		if status != "not_ready" || health.IndexedGames != 0 {
			t.Errorf("status = %q, indexed = %d; want not_ready, 0", status, health.IndexedGames)
		}
	})
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	h := setupTestHandler(t)
	// One miss then one hit.
	get(t, h, "/api/v1/playtime-genre/Action")
	get(t, h, "/api/v1/playtime-genre/Action")

	w := get(t, h, "/api/v1/snapshot")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var response struct {
		Status string       `json:"status"`
		Data   SnapshotInfo `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	info := response.Data
	if info.Snapshot.Games != 8 || info.Snapshot.Reviews != 16 || info.Snapshot.Playtime != 8 {
		t.Errorf("Snapshot = %+v, want 8 games, 16 reviews, 8 playtime records", info.Snapshot)
	}
	if info.Snapshot.DatedGames != 7 {
		t.Errorf("DatedGames = %d, want 7", info.Snapshot.DatedGames)
	}
	if info.Index.Documents != 8 || info.Index.Vocabulary == 0 {
		t.Errorf("Index = %+v, want 8 documents and a vocabulary", info.Index)
	}
	if info.Index.MatrixBytes != int64(8*9/2*8) {
		t.Errorf("MatrixBytes = %d, want %d", info.Index.MatrixBytes, 8*9/2*8)
	}
	if info.Cache == nil {
		t.Fatal("Cache should be reported when enabled")
	}
	if info.Cache.Keys != 1 || info.Cache.Hits != 1 || info.Cache.Misses != 1 {
		t.Errorf("Cache = %+v, want one key, one hit, one miss", info.Cache)
	}
	if info.Cache.HitRate != 50 {
		t.Errorf("HitRate = %v, want 50", info.Cache.HitRate)
	}
	if info.Cache.TTLSeconds != 60 {
		t.Errorf("TTLSeconds = %v, want 60", info.Cache.TTLSeconds)
	}
}

func TestSnapshot_NoEngine(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, nil, testConfig(), "test")
	w := httptest.NewRecorder()
	h.Snapshot(w, httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
