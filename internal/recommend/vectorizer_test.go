// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import (
	"math"
	"testing"
)

const epsilon = 1e-12

// idfOf returns the inverse document frequency of term and whether the
// term is in the vocabulary.
func (v *Vectorizer) idfOf(term string) (float64, bool) {
	i, ok := v.vocabulary[term]
	if !ok {
		return 0, false
	}
	return v.idf[i], true
}

// weightsOf returns the normalised TF-IDF weights of doc keyed by term.
func (v *Vectorizer) weightsOf(doc []string) map[string]float64 {
	vec := v.transform(doc)
	out := make(map[string]float64, len(vec.terms))
	for k, i := range vec.terms {
		out[v.terms[i]] = vec.weights[k]
	}
	return out
}

func TestFitVectorizer_IDF(t *testing.T) {
	t.Parallel()

	docs := [][]string{
		{"action", "valve", "action"},
		{"action", "indie"},
		{"strategy"},
	}
	v := FitVectorizer(docs)

	if got := v.VocabularySize(); got != 4 {
		t.Fatalf("VocabularySize() = %d, want 4", got)
	}
	wantTerms := []string{"action", "indie", "strategy", "valve"}
	for i, term := range wantTerms {
		if v.terms[i] != term {
			t.Errorf("terms[%d] = %q, want %q", i, v.terms[i], term)
		}
	}

	tests := []struct {
		term string
		df   float64
	}{
		{"action", 2},
		{"indie", 1},
		{"strategy", 1},
		{"valve", 1},
	}
	for _, tt := range tests {
		got, ok := v.idfOf(tt.term)
		if !ok {
			t.Fatalf("idfOf(%q) not found", tt.term)
		}
		want := math.Log(4/(1+tt.df)) + 1
		if math.Abs(got-want) > epsilon {
			t.Errorf("idfOf(%q) = %v, want %v", tt.term, got, want)
		}
	}

	if _, ok := v.idfOf("missing"); ok {
		t.Error("idfOf(missing) should not be found")
	}
}

func TestVectorizer_Weights(t *testing.T) {
	t.Parallel()

	docs := [][]string{
		{"action", "valve", "action"},
		{"action", "indie"},
		{"strategy"},
	}
	v := FitVectorizer(docs)
	w := v.weightsOf(docs[0])

	idfAction, _ := v.idfOf("action")
	idfValve, _ := v.idfOf("valve")
	rawAction := 2 * idfAction
	rawValve := idfValve
	norm := math.Sqrt(rawAction*rawAction + rawValve*rawValve)

	if math.Abs(w["action"]-rawAction/norm) > epsilon {
		t.Errorf("weight(action) = %v, want %v", w["action"], rawAction/norm)
	}
	if math.Abs(w["valve"]-rawValve/norm) > epsilon {
		t.Errorf("weight(valve) = %v, want %v", w["valve"], rawValve/norm)
	}

	var sum float64
	for _, x := range w {
		sum += x * x
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("squared norm = %v, want 1", sum)
	}
}

func TestVectorizer_EmptyDocument(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([][]string{{"action"}, nil})
	vec := v.transform(nil)
	if len(vec.terms) != 0 {
		t.Errorf("empty document has %d terms, want 0", len(vec.terms))
	}
	vec = v.transform([]string{"unknown"})
	if len(vec.terms) != 0 {
		t.Errorf("out-of-vocabulary document has %d terms, want 0", len(vec.terms))
	}
}
