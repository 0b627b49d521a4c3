// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinephile/internal/database"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
	"github.com/tomtom215/cinephile/internal/models"
)

// WriteRating appends value to the ratings of the movie identified by
// idText. Errors are classified as database.ErrValidation,
// database.ErrNotFound or database.ErrStorage.
func (s *Service) WriteRating(ctx context.Context, idText string, value int) error {
	movieID, err := ParseMovieID(idText)
	if err != nil {
		recordWrite(err)
		return err
	}
	_, err = s.RateMovie(ctx, movieID, value)
	return err
}

// RateMovie appends value to a movie's ratings and returns the updated
// ratings and summary.
func (s *Service) RateMovie(ctx context.Context, movieID int64, value int) (*models.RatingsResponse, error) {
	row, err := s.store.AppendRating(ctx, movieID, value)
	recordWrite(err)
	if err != nil {
		logWriteFailure(ctx, err).Int64("movie_id", movieID).Int("rating", value).Msg("rating write failed")
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("movie_id", movieID).Int("rating", value).Msg("rating recorded")
	return ratingsResponse(row), nil
}

// WriteRatingByTitle appends value to the ratings of the first movie titled
// title.
//
// Deprecated: titles are not unique. Use WriteRating or RateMovie.
func (s *Service) WriteRatingByTitle(ctx context.Context, title string, value int) (*models.RatingsResponse, error) {
	row, err := s.store.AppendRatingByTitle(ctx, title, value) //nolint:staticcheck // legacy path kept for old clients
	recordWrite(err)
	if err != nil {
		logWriteFailure(ctx, err).Str("title", title).Int("rating", value).Msg("rating write by title failed")
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("title", title).Int64("movie_id", row.MovieID).Int("rating", value).Msg("rating recorded by title")
	return ratingsResponse(row), nil
}

func recordWrite(err error) {
	metrics.RatingsWritten.WithLabelValues(writeResult(err)).Inc()
}

func writeResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, database.ErrValidation):
		return "validation"
	case errors.Is(err, database.ErrNotFound):
		return "not_found"
	default:
		return "storage"
	}
}

// logWriteFailure picks the level for a failed write: client errors are
// routine, storage errors are not.
func logWriteFailure(ctx context.Context, err error) *zerolog.Event {
	if errors.Is(err, database.ErrStorage) {
		return logging.Ctx(ctx).Error().Err(err)
	}
	return logging.Ctx(ctx).Debug().Err(err)
}
