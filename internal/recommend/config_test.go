// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import (
	"runtime"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"explicit workers", Config{Workers: 4, TopK: 5}, false},
		{"negative workers", Config{Workers: -1, TopK: 5}, true},
		{"zero top k", Config{TopK: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Workers(t *testing.T) {
	t.Parallel()

	if got := (Config{}).workers(); got != runtime.NumCPU() {
		t.Errorf("workers() = %d, want %d", got, runtime.NumCPU())
	}
	if got := (Config{Workers: 3}).workers(); got != 3 {
		t.Errorf("workers() = %d, want 3", got)
	}
}
