// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package catalogimport

import (
	"errors"
	"time"
)

// Import formats.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

var (
	// ErrNoSource is returned when no import path is configured.
	ErrNoSource = errors.New("catalogimport: no import path configured")

	// ErrMissingColumn is returned when the source lacks a required column.
	ErrMissingColumn = errors.New("catalogimport: required column missing")

	// ErrAlreadyRunning is returned when an import is already in progress.
	ErrAlreadyRunning = errors.New("catalogimport: import already in progress")
)

// ImportStats holds statistics about an import operation.
type ImportStats struct {
	// Format is the resolved source format, csv or sqlite.
	Format string `json:"format"`

	// Source is the file path that was read.
	Source string `json:"source"`

	// Rows is the number of catalog rows written.
	Rows int64 `json:"rows"`

	// HasMovieID and HasRatings record which optional columns the source had.
	HasMovieID bool `json:"has_movie_id"`
	HasRatings bool `json:"has_ratings"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Duration returns the duration of the import operation.
func (s *ImportStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
