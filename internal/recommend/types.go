// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package recommend

import (
	"errors"
	"sort"
	"time"

	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/similarity"
)

var (
	// ErrNotReady is returned when no index snapshot has been published yet.
	ErrNotReady = errors.New("recommend: similarity index not built")

	// ErrUnknownMovie is returned when a movie ID has no row in the snapshot.
	ErrUnknownMovie = errors.New("recommend: movie not in index")
)

// Result is one ranked recommendation.
type Result struct {
	// Position is the row position in the snapshot the result came from.
	Position int `json:"position"`

	// MovieID is the catalog movie ID. Zero or negative means the row has no ID.
	MovieID int64 `json:"movie_id"`

	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// HasID reports whether the result carries a usable movie ID.
func (r Result) HasID() bool {
	return r.MovieID > 0
}

// Model converts the result to its API representation.
func (r Result) Model() models.Recommendation {
	return models.Recommendation{
		Title:   r.Title,
		MovieID: r.MovieID,
		Score:   r.Score,
	}
}

// Snapshot is an immutable catalog view paired with its similarity index.
// Rows are addressed by position in the order the catalog was loaded.
type Snapshot struct {
	Version       uint64
	BuiltAt       time.Time
	BuildDuration time.Duration

	titles     []string
	ids        []int64
	titleIndex map[string]int
	index      *similarity.Index
}

func newSnapshot(movies []models.Movie, index *similarity.Index) *Snapshot {
	s := &Snapshot{
		titles:     make([]string, len(movies)),
		ids:        make([]int64, len(movies)),
		titleIndex: make(map[string]int, len(movies)),
		index:      index,
	}
	for i := range movies {
		s.titles[i] = movies[i].Title
		s.ids[i] = movies[i].MovieID
		if _, seen := s.titleIndex[movies[i].Title]; !seen {
			s.titleIndex[movies[i].Title] = i
		}
	}
	return s
}

// Len returns the number of catalog rows in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.titles)
}

// Titles returns every title in catalog order, duplicates included.
func (s *Snapshot) Titles() []string {
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out
}

// Lookup returns the position of the first row whose title equals title.
func (s *Snapshot) Lookup(title string) (int, bool) {
	pos, ok := s.titleIndex[title]
	return pos, ok
}

// PositionOf returns the first row position holding movieID. IDs <= 0 mark
// rows without an ID and are never found.
func (s *Snapshot) PositionOf(movieID int64) (int, bool) {
	if movieID <= 0 {
		return 0, false
	}
	return s.index.Position(movieID)
}

// VocabularySize returns the number of terms in the similarity vocabulary.
func (s *Snapshot) VocabularySize() int {
	return s.index.VocabularySize()
}

// Recommend ranks every row against the first row titled title and returns
// the top k. The query row and every row sharing its title are excluded.
// Ties keep catalog order.
func (s *Snapshot) Recommend(title string, k int) ([]Result, bool) {
	if title == "" {
		return nil, false
	}
	m, ok := s.titleIndex[title]
	if !ok {
		return nil, false
	}
	return s.rank(m, k), true
}

// RecommendByID is Recommend keyed by movie ID through the id -> position
// map. It returns ErrUnknownMovie when no row holds movieID.
func (s *Snapshot) RecommendByID(movieID int64, k int) ([]Result, error) {
	m, ok := s.PositionOf(movieID)
	if !ok {
		return nil, ErrUnknownMovie
	}
	return s.rank(m, k), nil
}

// rank orders every other row by similarity to row m and keeps the first k.
// Rows titled like m and rows without a title are skipped.
func (s *Snapshot) rank(m, k int) []Result {
	row := s.index.Row(m)
	title := s.titles[m]

	order := make([]int, 0, len(s.titles))
	for j, t := range s.titles {
		if j == m || t == "" || t == title {
			continue
		}
		order = append(order, j)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	if len(order) > k {
		order = order[:k]
	}

	results := make([]Result, len(order))
	for i, pos := range order {
		results[i] = Result{
			Position: pos,
			MovieID:  s.ids[pos],
			Title:    s.titles[pos],
			Score:    row[pos],
		}
	}
	return results
}

// BuildStatus represents the current index build state.
type BuildStatus struct {
	// Building indicates whether a build is in progress.
	Building bool `json:"building"`

	// Version is the version of the published snapshot, 0 before the first build.
	Version uint64 `json:"version"`

	// Rows is the catalog size of the published snapshot.
	Rows int `json:"rows"`

	LastBuiltAt  time.Time     `json:"last_built_at"`
	LastDuration time.Duration `json:"last_duration"`

	// LastError is the error from the most recent failed build, cleared on success.
	LastError string `json:"last_error,omitempty"`
}

// Stats holds request counters.
type Stats struct {
	Requests      int64 `json:"requests"`
	UnknownTitles int64 `json:"unknown_titles"`
	UnknownMovies int64 `json:"unknown_movies"`
	NotReady      int64 `json:"not_ready"`
	Builds        int64 `json:"builds"`
	FailedBuilds  int64 `json:"failed_builds"`
}
