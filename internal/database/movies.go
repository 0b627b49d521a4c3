// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/cinephile/internal/metrics"
	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
)

// Row order is physical insertion order; every read and write sorts by rowid
// so first-match semantics agree across the store.
const selectMovieColumns = `SELECT COALESCE(movie_id, 0), COALESCE(title, ''), COALESCE(tags, ''), COALESCE(ratings, '[]') FROM movies`

// LoadCatalogRows returns every catalog row in row order with ratings still serialized.
func (db *DB) LoadCatalogRows(ctx context.Context) ([]models.CatalogRow, error) {
	const op = "load catalog"
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, selectMovieColumns+` ORDER BY rowid`)
	if err != nil {
		metrics.RecordDBQuery("load_catalog", MoviesTable, time.Since(start), err)
		return nil, storageError(op, err)
	}
	defer closeWithLog(rows, "catalog rows")

	var out []models.CatalogRow
	for rows.Next() {
		var r models.CatalogRow
		if err := rows.Scan(&r.MovieID, &r.Title, &r.Tags, &r.RawRatings); err != nil {
			metrics.RecordDBQuery("load_catalog", MoviesTable, time.Since(start), err)
			return nil, storageError(op, fmt.Errorf("scan movie: %w", err))
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("load_catalog", MoviesTable, time.Since(start), err)
		return nil, storageError(op, err)
	}

	metrics.RecordDBQuery("load_catalog", MoviesTable, time.Since(start), nil)
	return out, nil
}

// LoadCatalog returns every movie in row order with ratings decoded.
// It satisfies recommend.CatalogProvider.
func (db *DB) LoadCatalog(ctx context.Context) ([]models.Movie, error) {
	rows, err := db.LoadCatalogRows(ctx)
	if err != nil {
		return nil, err
	}
	movies := make([]models.Movie, len(rows))
	for i := range rows {
		movies[i] = ToMovie(&rows[i])
	}
	return movies, nil
}

// CountMovies returns the number of catalog rows.
func (db *DB) CountMovies(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n)
	metrics.RecordDBQuery("count_movies", MoviesTable, time.Since(start), err)
	if err != nil {
		return 0, storageError("count movies", err)
	}
	return n, nil
}

// GetMovieRow returns the first row carrying movieID.
func (db *DB) GetMovieRow(ctx context.Context, movieID int64) (*models.CatalogRow, error) {
	const op = "get movie"
	if movieID <= 0 {
		return nil, validationError(op, "movie id %d is not positive", movieID)
	}
	return db.getRow(ctx, op, "movie_id = ?", movieID)
}

// GetMovieRowByTitle returns the first row whose title equals title exactly.
func (db *DB) GetMovieRowByTitle(ctx context.Context, title string) (*models.CatalogRow, error) {
	const op = "get movie by title"
	if title == "" {
		return nil, validationError(op, "title is empty")
	}
	return db.getRow(ctx, op, "title = ?", title)
}

// GetMovie returns the first movie carrying movieID with ratings decoded.
func (db *DB) GetMovie(ctx context.Context, movieID int64) (*models.Movie, error) {
	row, err := db.GetMovieRow(ctx, movieID)
	if err != nil {
		return nil, err
	}
	m := ToMovie(row)
	return &m, nil
}

func (db *DB) getRow(ctx context.Context, op, where string, key any) (*models.CatalogRow, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var r models.CatalogRow
	err := db.conn.QueryRowContext(ctx, selectMovieColumns+` WHERE `+where+` ORDER BY rowid LIMIT 1`, key).
		Scan(&r.MovieID, &r.Title, &r.Tags, &r.RawRatings)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("get_movie", MoviesTable, time.Since(start), nil)
		return nil, notFoundError(op, "no movie matches %v", key)
	}
	metrics.RecordDBQuery("get_movie", MoviesTable, time.Since(start), err)
	if err != nil {
		return nil, storageError(op, err)
	}
	return &r, nil
}

// ToMovie decodes a stored row. Non-numeric rating entries are dropped.
func ToMovie(r *models.CatalogRow) models.Movie {
	entries, _ := ratings.Decode(r.RawRatings)
	return models.Movie{
		MovieID: r.MovieID,
		Title:   r.Title,
		Tags:    r.Tags,
		Ratings: ratings.Numeric(entries),
	}
}
