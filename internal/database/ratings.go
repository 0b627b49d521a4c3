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

	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
)

// Rating bounds accepted by the writer.
const (
	MinRating = 1
	MaxRating = 5
)

// AppendRating appends value to the ratings of the first row carrying
// movieID and returns the updated row. The read and the single-row UPDATE
// run in one transaction; on any failure the store is unchanged.
func (db *DB) AppendRating(ctx context.Context, movieID int64, value int) (*models.CatalogRow, error) {
	const op = "append rating"
	if movieID <= 0 {
		return nil, validationError(op, "movie id %d is not positive", movieID)
	}
	return db.appendRating(ctx, op, "movie_id = ?", movieID, value)
}

// AppendRatingByTitle appends value to the first row whose title equals title.
//
// Deprecated: titles are not unique. Use AppendRating with the movie ID.
func (db *DB) AppendRatingByTitle(ctx context.Context, title string, value int) (*models.CatalogRow, error) {
	const op = "append rating by title"
	if title == "" {
		return nil, validationError(op, "title is empty")
	}
	return db.appendRating(ctx, op, "title = ?", title, value)
}

func (db *DB) appendRating(ctx context.Context, op, where string, key any, value int) (*models.CatalogRow, error) {
	if value < MinRating || value > MaxRating {
		return nil, validationError(op, "rating %d outside %d..%d", value, MinRating, MaxRating)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row, err := db.appendRatingTx(ctx, op, where, key, value)
	if err != nil && isTransactionConflict(err) {
		logging.Debug().Str("op", op).Msg("Retrying rating write after transaction conflict")
		row, err = db.appendRatingTx(ctx, op, where, key, value)
	}

	var storageErr error
	if errors.Is(err, ErrStorage) {
		storageErr = err
	}
	metrics.RecordDBQuery("append_rating", MoviesTable, time.Since(start), storageErr)

	if err != nil {
		return nil, err
	}
	return row, nil
}

func (db *DB) appendRatingTx(ctx context.Context, op, where string, key any, value int) (*models.CatalogRow, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageError(op, fmt.Errorf("begin transaction: %w", err))
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logging.Warn().Err(rbErr).Str("op", op).Msg("Rollback failed")
			}
		}
	}()

	var rowID int64
	r := &models.CatalogRow{}
	err = tx.QueryRowContext(ctx,
		`SELECT rowid, COALESCE(movie_id, 0), COALESCE(title, ''), COALESCE(tags, ''), COALESCE(ratings, '[]')
		 FROM movies WHERE `+where+` ORDER BY rowid LIMIT 1`, key).
		Scan(&rowID, &r.MovieID, &r.Title, &r.Tags, &r.RawRatings)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFoundError(op, "no movie matches %v", key)
	}
	if err != nil {
		return nil, storageError(op, fmt.Errorf("select movie: %w", err))
	}

	r.RawRatings = ratings.Append(r.RawRatings, value)

	res, err := tx.ExecContext(ctx, `UPDATE movies SET ratings = ? WHERE rowid = ?`, r.RawRatings, rowID)
	if err != nil {
		return nil, storageError(op, fmt.Errorf("update ratings: %w", err))
	}
	if n, err := res.RowsAffected(); err == nil && n != 1 {
		return nil, storageError(op, fmt.Errorf("update touched %d rows, want 1", n))
	}

	if err := tx.Commit(); err != nil {
		return nil, storageError(op, fmt.Errorf("commit: %w", err))
	}
	committed = true
	return r, nil
}
