// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package models

// Movie is one catalog row.
//
// MovieID is unique by convention only; a value <= 0 means the source row had
// no usable id. Ratings is append-only and may contain non-numeric legacy
// entries, which readers drop.
type Movie struct {
	MovieID int64     `json:"movie_id"`
	Title   string    `json:"title"`
	Tags    string    `json:"tags,omitempty"`
	Ratings []float64 `json:"ratings"`
}

// HasID reports whether the movie carries a usable external identifier.
func (m *Movie) HasID() bool {
	return m.MovieID > 0
}

// CatalogRow is a movie as stored, with ratings still in serialized form.
type CatalogRow struct {
	MovieID    int64
	Title      string
	Tags       string
	RawRatings string
}

// Recommendation is one ranked result.
type Recommendation struct {
	Title     string  `json:"title"`
	MovieID   int64   `json:"movie_id"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url,omitempty"`
}

// RatingSummary is the display form of a movie's ratings.
type RatingSummary struct {
	Display string  `json:"display"`
	Filled  int     `json:"filled"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}
