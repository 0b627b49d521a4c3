// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package similarity

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// entry is one non-zero component of a sparse count vector.
type entry struct {
	term  int
	count float64
}

// posting records that doc contains a term count times.
type posting struct {
	doc   int
	count float64
}

// Build vectorizes docs and computes the full cosine similarity matrix.
//
// Rows are computed in parallel from per-term postings, so only document
// pairs that share a term are multiplied. Build returns ctx.Err() if the
// context is cancelled before every row is written.
func Build(ctx context.Context, docs []Document, opts Options) (*Index, error) {
	n := len(docs)
	if n == 0 {
		return nil, ErrNoRows
	}

	maxFeatures := opts.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perDoc := make([]map[string]int, n)
	totals := make(map[string]int)
	for i, doc := range docs {
		if i%256 == 0 && contextCancelled(ctx) {
			return nil, ctx.Err()
		}
		counts := termCounts(doc.Tags)
		perDoc[i] = counts
		for term, c := range counts {
			totals[term] += c
		}
	}

	vocabulary := selectVocabulary(totals, maxFeatures)
	if len(vocabulary) == 0 {
		return nil, ErrEmptyCorpus
	}
	termIndex := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		termIndex[term] = i
	}

	vectors := make([][]entry, n)
	norms := make([]float64, n)
	postings := make([][]posting, len(vocabulary))
	nonZero := 0
	for i, counts := range perDoc {
		vec := make([]entry, 0, len(counts))
		for term, c := range counts {
			if t, ok := termIndex[term]; ok {
				vec = append(vec, entry{term: t, count: float64(c)})
			}
		}
		sort.Slice(vec, func(a, b int) bool { return vec[a].term < vec[b].term })

		var sumSq float64
		for _, e := range vec {
			sumSq += e.count * e.count
			postings[e.term] = append(postings[e.term], posting{doc: i, count: e.count})
		}
		if len(vec) > 0 {
			nonZero++
		}
		vectors[i] = vec
		norms[i] = math.Sqrt(sumSq)
	}

	positions := make(map[int64]int, n)
	for i, doc := range docs {
		if _, seen := positions[doc.MovieID]; !seen {
			positions[doc.MovieID] = i
		}
	}

	matrix := make([]float64, n*n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if contextCancelled(gctx) {
			break
		}
		g.Go(func() error {
			if contextCancelled(gctx) {
				return gctx.Err()
			}
			fillRow(matrix[i*n:(i+1)*n], i, vectors[i], norms, postings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute similarity rows: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compute similarity rows: %w", err)
	}

	return &Index{
		n:          n,
		matrix:     matrix,
		positions:  positions,
		vocabulary: vocabulary,
		nonZero:    nonZero,
	}, nil
}

// fillRow writes sim(i, j) for every j into row.
func fillRow(row []float64, i int, vec []entry, norms []float64, postings [][]posting) {
	dots := make([]float64, len(row))
	for _, e := range vec {
		for _, p := range postings[e.term] {
			dots[p.doc] += e.count * p.count
		}
	}

	ni := norms[i]
	for j := range row {
		switch {
		case j == i:
			row[j] = 1
		case ni == 0 || norms[j] == 0:
			row[j] = 0
		default:
			row[j] = clamp01(dots[j] / (ni * norms[j]))
		}
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

// contextCancelled checks if the context has been cancelled without blocking.
func contextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
