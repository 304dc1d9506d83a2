// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import (
	"math"
	"sort"
)

// sparseVector is an L2-normalised TF-IDF vector. Terms are vocabulary
// indices in ascending order.
type sparseVector struct {
	terms   []int
	weights []float64
}

// Vectorizer maps token lists to TF-IDF vectors over a fitted vocabulary.
type Vectorizer struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// FitVectorizer learns the vocabulary (sorted term order) and smoothed
// inverse document frequencies from docs.
func FitVectorizer(docs [][]string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
	}
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

// VocabularySize returns the number of distinct terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

// transform weights raw term counts by idf and L2-normalises the result.
// Tokens outside the vocabulary are ignored. An empty document yields the
// zero vector.
func (v *Vectorizer) transform(doc []string) sparseVector {
	counts := make(map[int]int, len(doc))
	for _, tok := range doc {
		if i, ok := v.vocabulary[tok]; ok {
			counts[i]++
		}
	}

	vec := sparseVector{
		terms:   make([]int, 0, len(counts)),
		weights: make([]float64, 0, len(counts)),
	}
	for i := range counts {
		vec.terms = append(vec.terms, i)
	}
	sort.Ints(vec.terms)

	var norm float64
	for _, i := range vec.terms {
		w := float64(counts[i]) * v.idf[i]
		vec.weights = append(vec.weights, w)
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for k := range vec.weights {
			vec.weights[k] /= norm
		}
	}
	return vec
}
