// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package similarity builds the all-pairs content similarity matrix for the
// movie catalog.
//
// Each document's tag text is lowercased, split into runs of two or more word
// characters, and filtered against the English stop-word list. The 5000 most
// frequent surviving terms form the vocabulary; each document becomes a
// term-count vector over it, and the matrix holds the cosine similarity of
// every pair of vectors.
//
// # Usage
//
//	idx, err := similarity.Build(ctx, docs, similarity.Options{MaxFeatures: 5000})
//	if err != nil {
//	    return err
//	}
//	score := idx.Similarity(0, 42)
//
// An Index is immutable once Build returns and is safe for concurrent readers.
package similarity
