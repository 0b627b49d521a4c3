// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package similarity

import "errors"

var (
	// ErrNoRows is returned when Build receives no documents.
	ErrNoRows = errors.New("similarity: no rows to index")

	// ErrEmptyCorpus is returned when no vocabulary term survives
	// tokenization and stop-word removal.
	ErrEmptyCorpus = errors.New("similarity: empty vocabulary after stop-word removal")
)

// DefaultMaxFeatures is the vocabulary size used when Options.MaxFeatures is zero.
const DefaultMaxFeatures = 5000

// Document is one catalog row as seen by the index builder.
type Document struct {
	MovieID int64
	Tags    string
}

// Options configures Build.
type Options struct {
	// MaxFeatures caps the vocabulary size. Zero means DefaultMaxFeatures.
	MaxFeatures int

	// Workers bounds the number of matrix rows computed concurrently.
	// Zero means GOMAXPROCS.
	Workers int
}

// Index is an immutable R×R cosine similarity matrix over the documents
// passed to Build, addressed by row position.
type Index struct {
	n          int
	matrix     []float64
	positions  map[int64]int
	vocabulary []string
	nonZero    int
}

// Len returns the number of rows.
func (x *Index) Len() int {
	return x.n
}

// Row returns the similarity scores of row i against every row, in row order.
// The returned slice is shared and must not be modified.
func (x *Index) Row(i int) []float64 {
	if i < 0 || i >= x.n {
		return nil
	}
	return x.matrix[i*x.n : (i+1)*x.n : (i+1)*x.n]
}

// Similarity returns sim(i, j), or 0 when either position is out of range.
func (x *Index) Similarity(i, j int) float64 {
	if i < 0 || i >= x.n || j < 0 || j >= x.n {
		return 0
	}
	return x.matrix[i*x.n+j]
}

// Position returns the first row position holding movieID.
func (x *Index) Position(movieID int64) (int, bool) {
	pos, ok := x.positions[movieID]
	return pos, ok
}

// Vocabulary returns a copy of the alphabetically ordered vocabulary.
func (x *Index) Vocabulary() []string {
	out := make([]string, len(x.vocabulary))
	copy(out, x.vocabulary)
	return out
}

// VocabularySize returns the number of vocabulary terms.
func (x *Index) VocabularySize() int {
	return len(x.vocabulary)
}

// EmptyRows returns how many documents have an all-zero count vector.
func (x *Index) EmptyRows() int {
	return x.n - x.nonZero
}
