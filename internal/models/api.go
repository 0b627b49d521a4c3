// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package models

import "time"

// RecommendationsResponse is returned by GET /api/v1/recommendations.
// Titles and Posters are parallel lists; an empty poster means unavailable.
type RecommendationsResponse struct {
	Query   string           `json:"query"`
	Found   bool             `json:"found"`
	Items   []Recommendation `json:"items"`
	Titles  []string         `json:"titles"`
	Posters []string         `json:"posters"`
}

// SimilarResponse is returned by GET /api/v1/movies/{movieID}/similar.
type SimilarResponse struct {
	MovieID int64            `json:"movie_id"`
	Items   []Recommendation `json:"items"`
}

// MovieResponse is returned by GET /api/v1/movies/{movieID}.
type MovieResponse struct {
	Movie     Movie         `json:"movie"`
	Summary   RatingSummary `json:"summary"`
	PosterURL string        `json:"poster_url,omitempty"`
}

// RatingsResponse carries a movie's raw ratings and their summary.
type RatingsResponse struct {
	MovieID int64         `json:"movie_id"`
	Ratings []float64     `json:"ratings"`
	Summary RatingSummary `json:"summary"`
}

// PosterResponse is returned by GET /api/v1/posters/{movieID}.
type PosterResponse struct {
	MovieID   int64  `json:"movie_id"`
	PosterURL string `json:"poster_url"`
}

// RateRequest is the body of POST /api/v1/movies/{movieID}/ratings.
type RateRequest struct {
	Rating int `json:"rating" validate:"min=1,max=5"`
}

// RateByTitleRequest is the body of the deprecated PUT /api/v1/ratings/by-title.
type RateByTitleRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// RecommendQuery holds GET /api/v1/recommendations parameters.
type RecommendQuery struct {
	Title string `query:"title" validate:"required,notblank,max=500"`
}

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	DatabaseOK     bool      `json:"database_ok"`
	IndexReady     bool      `json:"index_ready"`
	IndexVersion   uint64    `json:"index_version"`
	IndexBuiltAt   time.Time `json:"index_built_at,omitempty"`
	IndexAge       string    `json:"index_age,omitempty"`
	CatalogSize    int       `json:"catalog_size"`
	VocabularySize int       `json:"vocabulary_size"`
	PosterBreaker  string    `json:"poster_breaker"`
	Uptime         float64   `json:"uptime_seconds"`
}
