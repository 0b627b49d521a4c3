// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
	"github.com/tomtom215/cinephile/internal/recommend"
)

// Service is the display contract the handlers call. Implemented by
// *service.Service.
type Service interface {
	Titles(ctx context.Context) []string
	RecommendDetailed(ctx context.Context, title string) ([]models.Recommendation, bool)
	Similar(ctx context.Context, movieID int64) ([]models.Recommendation, error)
	GetMovie(ctx context.Context, movieID int64) (*models.MovieResponse, error)
	MovieRatings(ctx context.Context, movieID int64) (*models.RatingsResponse, error)
	RateMovie(ctx context.Context, movieID int64, value int) (*models.RatingsResponse, error)
	WriteRatingByTitle(ctx context.Context, title string, value int) (*models.RatingsResponse, error)
	AggregateRatings(raw any) ratings.Summary
	Poster(ctx context.Context, movieID int64) (string, bool)
}

// IndexStatus reports the similarity index state. Implemented by
// *recommend.Engine.
type IndexStatus interface {
	Snapshot() *recommend.Snapshot
	Status() recommend.BuildStatus
}

// Pinger checks store connectivity. Implemented by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerReporter exposes the poster circuit breaker state. Implemented by
// *poster.Client.
type BreakerReporter interface {
	BreakerState() string
}

// Dependencies wires a Handler. Posters may be nil when TMDB is disabled.
type Dependencies struct {
	Service Service
	Index   IndexStatus
	DB      Pinger
	Posters BreakerReporter
	Version string
}

// Handler serves the /api/v1 endpoints.
type Handler struct {
	svc       Service
	index     IndexStatus
	db        Pinger
	posters   BreakerReporter
	version   string
	startTime time.Time
}

// NewHandler creates a Handler.
func NewHandler(deps Dependencies) *Handler {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		svc:       deps.Service,
		index:     deps.Index,
		db:        deps.DB,
		posters:   deps.Posters,
		version:   version,
		startTime: time.Now(),
	}
}
