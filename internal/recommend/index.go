// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/playstats/internal/models"
)

// posting is one (document, weight) entry of a term's postings list.
type posting struct {
	doc    int
	weight float64
}

// Index is the precomputed content similarity index.
type Index struct {
	ids       []string
	names     []string
	positions map[string]int
	matrix    []float64
	n         int
	topK      int
	stats     Stats
}

// Build vectorizes games and computes the full pairwise cosine similarity
// matrix. Game order defines catalog positions. The context is only
// consulted while rows are being computed.
func Build(ctx context.Context, games []models.Game, cfg Config, logger zerolog.Logger) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	logger = logger.With().Str("component", "recommend").Logger()
	start := time.Now()

	n := len(games)
	idx := &Index{
		ids:       make([]string, n),
		names:     make([]string, n),
		positions: make(map[string]int, n),
		n:         n,
		topK:      cfg.TopK,
	}

	docs := make([][]string, n)
	for i := range games {
		g := &games[i]
		idx.ids[i] = g.ID
		idx.names[i] = g.Name
		if _, ok := idx.positions[g.ID]; !ok {
			idx.positions[g.ID] = i
		}
		docs[i] = Tokenize(g.FeatureText())
	}

	vectorizer := FitVectorizer(docs)
	vectors := make([]sparseVector, n)
	nonZero := 0
	for i, doc := range docs {
		vectors[i] = vectorizer.transform(doc)
		nonZero += len(vectors[i].terms)
	}

	postings := buildPostings(vectors, vectorizer.VocabularySize())

	if dup := n - len(idx.positions); dup > 0 {
		logger.Warn().Int("duplicates", dup).Msg("Catalog contains duplicate identifiers, lookups use the first occurrence")
	}

	idx.matrix = make([]float64, packedSize(n))
	workers := cfg.workers()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			idx.computeRow(i, vectors[i], postings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity build canceled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("similarity build canceled: %w", err)
	}

	idx.stats = Stats{
		Documents:     n,
		Vocabulary:    vectorizer.VocabularySize(),
		NonZero:       nonZero,
		MatrixBytes:   int64(len(idx.matrix)) * 8,
		BuildDuration: time.Since(start),
		Workers:       workers,
	}

	logger.Info().
		Int("documents", n).
		Int("vocabulary", idx.stats.Vocabulary).
		Int64("matrix_bytes", idx.stats.MatrixBytes).
		Int("workers", workers).
		Dur("duration", idx.stats.BuildDuration).
		Msg("Similarity index built")

	return idx, nil
}

// buildPostings inverts the document vectors. Each postings list is in
// ascending document order.
func buildPostings(vectors []sparseVector, vocab int) [][]posting {
	postings := make([][]posting, vocab)
	for doc, vec := range vectors {
		for k, term := range vec.terms {
			postings[term] = append(postings[term], posting{doc: doc, weight: vec.weights[k]})
		}
	}
	return postings
}

// computeRow fills row i of the packed upper triangle. Only columns j > i
// are accumulated; the diagonal is fixed at 1.
func (idx *Index) computeRow(i int, vec sparseVector, postings [][]posting) {
	row := idx.matrix[rowStart(i, idx.n) : rowStart(i, idx.n)+idx.n-i]
	for k, term := range vec.terms {
		w := vec.weights[k]
		list := postings[term]
		from := sort.Search(len(list), func(p int) bool { return list[p].doc > i })
		for _, p := range list[from:] {
			row[p.doc-i] += w * p.weight
		}
	}
	row[0] = 1
	for j := 1; j < len(row); j++ {
		row[j] = clamp01(row[j])
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// packedSize is the number of stored values for n documents.
func packedSize(n int) int {
	return n * (n + 1) / 2
}

// rowStart is the offset of (i, i) in the packed upper triangle.
func rowStart(i, n int) int {
	return i*n - i*(i-1)/2
}

// Len returns the number of indexed catalog entries.
func (idx *Index) Len() int {
	return idx.n
}

// TopK returns the configured default neighbor count.
func (idx *Index) TopK() int {
	return idx.topK
}

// Stats returns build statistics.
func (idx *Index) Stats() Stats {
	return idx.stats
}

// position returns the first catalog position of id.
func (idx *Index) position(id string) (int, bool) {
	p, ok := idx.positions[id]
	return p, ok
}

// Similarity returns the cosine similarity of the entries at positions i
// and j. It panics if either position is out of range.
func (idx *Index) Similarity(i, j int) float64 {
	if i < 0 || j < 0 || i >= idx.n || j >= idx.n {
		panic(fmt.Sprintf("recommend: position out of range (%d, %d) with n=%d", i, j, idx.n))
	}
	if i > j {
		i, j = j, i
	}
	return idx.matrix[rowStart(i, idx.n)+(j-i)]
}

// Similar returns the k entries most similar to id, excluding the queried
// position. Scores are descending; equal scores keep catalog order.
func (idx *Index) Similar(id string, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", models.ErrValidation, k)
	}
	pos, ok := idx.position(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}
	if idx.n < k+1 {
		return nil, fmt.Errorf("%w: catalog has %d entries, need %d", models.ErrInsufficientData, idx.n, k+1)
	}

	candidates := make([]Neighbor, 0, idx.n-1)
	for j := 0; j < idx.n; j++ {
		if j == pos {
			continue
		}
		candidates = append(candidates, Neighbor{
			ID:       idx.ids[j],
			Name:     idx.names[j],
			Score:    idx.Similarity(pos, j),
			Position: j,
		})
	}
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Position < candidates[b].Position
	})
	return candidates[:k], nil
}
