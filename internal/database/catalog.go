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
)

// ReplaceCatalog replaces the whole catalog with rows, in order, inside one
// transaction. This is the only whole-table write; ratings are never
// written this way.
func (db *DB) ReplaceCatalog(ctx context.Context, rows []models.CatalogRow) (int64, error) {
	const op = "replace catalog"
	if len(rows) == 0 {
		return 0, validationError(op, "refusing to replace catalog with zero rows")
	}

	return db.replaceCatalog(ctx, op, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (movie_id, title, tags, ratings) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, fmt.Errorf("prepare insert: %w", err)
		}
		defer closeWithLog(stmt, "prepared statement")

		for i := range rows {
			raw := rows[i].RawRatings
			if raw == "" {
				raw = "[]"
			}
			var id any
			if rows[i].MovieID > 0 {
				id = rows[i].MovieID
			}
			if _, err := stmt.ExecContext(ctx, id, rows[i].Title, rows[i].Tags, raw); err != nil {
				return 0, fmt.Errorf("insert row %d: %w", i, err)
			}
		}
		return int64(len(rows)), nil
	})
}

// ReplaceCatalogFromSelect replaces the catalog with the result of selectSQL,
// which must yield the columns (movie_id, title, tags, ratings) in order.
// It is used by the importers to stream rows from read_csv_auto or an
// attached SQLite database without materializing them in Go.
func (db *DB) ReplaceCatalogFromSelect(ctx context.Context, selectSQL string, args ...any) (int64, error) {
	const op = "replace catalog"
	return db.replaceCatalog(ctx, op, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx, `INSERT INTO movies (movie_id, title, tags, ratings) `+selectSQL, args...)
		if err != nil {
			return 0, fmt.Errorf("insert from source: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return 0, errEmptySource
		}
		return n, nil
	})
}

var errEmptySource = errors.New("source yielded zero rows")

func (db *DB) replaceCatalog(ctx context.Context, op string, fill func(context.Context, *sql.Tx) (int64, error)) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	n, err := db.replaceCatalogTx(ctx, op, fill)
	var storageErr error
	if errors.Is(err, ErrStorage) {
		storageErr = err
	}
	metrics.RecordDBQuery("replace_catalog", MoviesTable, time.Since(start), storageErr)
	if err != nil {
		return 0, err
	}

	logging.Info().Int64("rows", n).Dur("duration", time.Since(start)).Msg("Catalog replaced")
	return n, nil
}

func (db *DB) replaceCatalogTx(ctx context.Context, op string, fill func(context.Context, *sql.Tx) (int64, error)) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageError(op, fmt.Errorf("begin transaction: %w", err))
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logging.Warn().Err(rbErr).Str("op", op).Msg("Rollback failed")
			}
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return 0, storageError(op, fmt.Errorf("clear catalog: %w", err))
	}

	n, err := fill(ctx, tx)
	if errors.Is(err, errEmptySource) {
		return 0, validationError(op, "%v", err)
	}
	if err != nil {
		return 0, storageError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageError(op, fmt.Errorf("commit: %w", err))
	}
	committed = true
	return n, nil
}
