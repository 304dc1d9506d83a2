// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"lowercases", "Action RPG", []string{"action", "rpg"}},
		{"punctuation splits", "Multi-player Steam-Achievements", []string{"multi", "player", "steam", "achievements"}},
		{"drops single characters", "a b cd e", []string{"cd"}},
		{"keeps digits", "Valve 10 2", []string{"valve", "10"}},
		{"keeps underscore", "Free_to_Play", []string{"free_to_play"}},
		{"unicode letters", "Éxito 2D ñu", []string{"éxito", "2d", "ñu"}},
		{"trailing token", "indie   ", []string{"indie"}},
		{"only separators", " - / , ", nil},
		{"combining mark splits", "cafe\u0301 x", []string{"cafe"}},
		{"precomposed accent kept", "caf\u00e9", []string{"caf\u00e9"}},
		{"devanagari vowel signs split", "\u0915\u093f\u0924\u093e\u092c", nil},
		{"mark between long runs", "ab\u0301cd", []string{"ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
