// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/cinephile/internal/database"
	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
)

// ParseMovieID parses a user-supplied movie id. Anything that is not a
// positive integer is an ErrValidation.
func ParseMovieID(text string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: movie id must be a positive integer, got %q", database.ErrValidation, text)
	}
	return id, nil
}

// GetMovie returns a movie with its rating summary and poster.
func (s *Service) GetMovie(ctx context.Context, movieID int64) (*models.MovieResponse, error) {
	row, err := s.store.GetMovieRow(ctx, movieID)
	if err != nil {
		return nil, err
	}

	resp := &models.MovieResponse{
		Movie:   database.ToMovie(row),
		Summary: ratings.Aggregate(row.RawRatings).Model(),
	}
	if url, ok := s.Poster(ctx, movieID); ok {
		resp.PosterURL = url
	}
	return resp, nil
}

// MovieRatings returns the stored ratings of a movie and their summary.
func (s *Service) MovieRatings(ctx context.Context, movieID int64) (*models.RatingsResponse, error) {
	row, err := s.store.GetMovieRow(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return ratingsResponse(row), nil
}

// RatingSummary returns the star summary for a movie. Missing ids and
// store failures summarize as "No ratings available".
func (s *Service) RatingSummary(ctx context.Context, movieID int64) ratings.Summary {
	if movieID <= 0 {
		return ratings.Aggregate(nil)
	}
	row, err := s.store.GetMovieRow(ctx, movieID)
	if err != nil {
		s.logger.Debug().Err(err).Int64("movie_id", movieID).Msg("rating summary unavailable")
		return ratings.Aggregate(nil)
	}
	return ratings.Aggregate(row.RawRatings)
}

func ratingsResponse(row *models.CatalogRow) *models.RatingsResponse {
	entries, _ := ratings.Decode(row.RawRatings) //nolint:errcheck // malformed entries are still usable
	values := ratings.Numeric(entries)
	if values == nil {
		values = []float64{}
	}
	return &models.RatingsResponse{
		MovieID: row.MovieID,
		Ratings: values,
		Summary: ratings.Aggregate(row.RawRatings).Model(),
	}
}
