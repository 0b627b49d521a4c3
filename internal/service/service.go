// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
	"github.com/tomtom215/cinephile/internal/recommend"
)

// Recommender produces ranked recommendations. Implemented by *recommend.Engine.
type Recommender interface {
	Recommend(ctx context.Context, title string) ([]recommend.Result, bool)
	RecommendByID(ctx context.Context, movieID int64) ([]recommend.Result, error)
	Titles() []string
}

// Store reads and updates catalog rows. Implemented by *database.DB.
type Store interface {
	GetMovieRow(ctx context.Context, movieID int64) (*models.CatalogRow, error)
	AppendRating(ctx context.Context, movieID int64, value int) (*models.CatalogRow, error)
	AppendRatingByTitle(ctx context.Context, title string, value int) (*models.CatalogRow, error)
}

// PosterSource resolves poster URLs. Implemented by *poster.Client.
type PosterSource interface {
	Poster(ctx context.Context, movieID int64) (string, bool)
}

// Config tunes poster resolution.
type Config struct {
	// PosterConcurrency bounds concurrent poster lookups per request.
	PosterConcurrency int
	// PosterTimeout bounds the whole poster fan-out for one request.
	PosterTimeout time.Duration
}

// DefaultConfig returns the default service settings.
func DefaultConfig() Config {
	return Config{
		PosterConcurrency: 8,
		PosterTimeout:     5 * time.Second,
	}
}

// Service is the display contract. It is safe for concurrent use.
type Service struct {
	cfg         Config
	recommender Recommender
	store       Store
	posters     PosterSource
	logger      zerolog.Logger
}

// New creates a Service. posters may be nil, in which case every poster is
// reported as unavailable.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, recommender Recommender, store Store, posters PosterSource, logger zerolog.Logger) *Service {
	if cfg.PosterConcurrency < 1 {
		cfg.PosterConcurrency = DefaultConfig().PosterConcurrency
	}
	if cfg.PosterTimeout <= 0 {
		cfg.PosterTimeout = DefaultConfig().PosterTimeout
	}
	return &Service{
		cfg:         cfg,
		recommender: recommender,
		store:       store,
		posters:     posters,
		logger:      logger.With().Str("component", "service").Logger(),
	}
}

// Titles returns every catalog title in row order. Before the index is
// built the list is empty.
func (s *Service) Titles(_ context.Context) []string {
	titles := s.recommender.Titles()
	if titles == nil {
		return []string{}
	}
	return titles
}

// Recommend returns the titles most similar to title and a parallel list of
// poster URLs. An unknown title yields two empty lists.
func (s *Service) Recommend(ctx context.Context, title string) (titles, posters []string) {
	items, _ := s.RecommendDetailed(ctx, title)
	titles = make([]string, len(items))
	posters = make([]string, len(items))
	for i := range items {
		titles[i] = items[i].Title
		posters[i] = items[i].PosterURL
	}
	return titles, posters
}

// RecommendDetailed returns ranked recommendations with scores, ids and
// poster URLs. found is false when the title is unknown or the index is not
// built yet.
func (s *Service) RecommendDetailed(ctx context.Context, title string) (items []models.Recommendation, found bool) {
	results, found := s.recommender.Recommend(ctx, title)
	if !found {
		return []models.Recommendation{}, false
	}
	return s.withPosters(ctx, results), true
}

// Similar returns the recommendations for the row holding movieID. Errors are
// recommend.ErrNotReady and recommend.ErrUnknownMovie.
func (s *Service) Similar(ctx context.Context, movieID int64) ([]models.Recommendation, error) {
	results, err := s.recommender.RecommendByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return s.withPosters(ctx, results), nil
}

func (s *Service) withPosters(ctx context.Context, results []recommend.Result) []models.Recommendation {
	items := make([]models.Recommendation, len(results))
	ids := make([]int64, len(results))
	for i := range results {
		items[i] = results[i].Model()
		ids[i] = results[i].MovieID
	}
	for i, url := range s.ResolvePosters(ctx, ids) {
		items[i].PosterURL = url
	}
	return items
}

// ResolvePosters looks up posters for ids concurrently. The result is
// parallel to ids; "" marks a missing id or an unavailable poster.
func (s *Service) ResolvePosters(ctx context.Context, ids []int64) []string {
	posters := make([]string, len(ids))
	if s.posters == nil || len(ids) == 0 {
		return posters
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.PosterTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.PosterConcurrency)
	for i, id := range ids {
		if id <= 0 {
			continue
		}
		g.Go(func() error {
			if url, ok := s.posters.Poster(gctx, id); ok {
				posters[i] = url
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return errors

	return posters
}

// Poster returns a single poster URL for movieID.
func (s *Service) Poster(ctx context.Context, movieID int64) (string, bool) {
	if s.posters == nil || movieID <= 0 {
		return "", false
	}
	return s.posters.Poster(ctx, movieID)
}

// AggregateRatings summarizes a raw rating list. It never fails; see
// ratings.Aggregate for the accepted input forms.
func (s *Service) AggregateRatings(raw any) ratings.Summary {
	return ratings.Aggregate(raw)
}
