// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Package recommend implements the content similarity index behind the
// "games similar to X" endpoint.
//
// # Model
//
// Each catalog entry is described by one feature string:
//
//	genres + " " + specs + " " + developer + " " + id
//
// The strings are tokenized (lowercase, runs of two or more word characters),
// weighted with smoothed TF-IDF and L2-normalised:
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//	w(t,d) = count(t,d) * idf(t)
//
// Cosine similarity between every pair of entries is precomputed once at
// startup. Because vectors are normalised, cosine similarity is the dot
// product; it is accumulated through an inverted index so that only pairs
// sharing a term cost any work.
//
// # Storage
//
// The matrix is symmetric, so only the upper triangle (diagonal included)
// is stored, packed row by row: n(n+1)/2 float64 values. Rows are computed
// in parallel by a bounded errgroup; each worker writes a disjoint slice of
// the packed array.
//
// # Lookup
//
//	idx, err := recommend.Build(ctx, snap.Games, recommend.DefaultConfig(), logger)
//	neighbors, err := idx.Similar("620", 5)
//
// Similar resolves the id to its first catalog position, ranks every other
// entry by score (descending, ties in catalog order) and returns the top k.
//
// # Thread Safety
//
// An Index is immutable after Build and safe for concurrent use.
package recommend
