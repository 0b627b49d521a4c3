// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package database

import (
	"context"
	"fmt"
)

// MoviesTable is the catalog table name.
const MoviesTable = "movies"

// movie_id is deliberately not UNIQUE: source catalogs contain duplicates and
// lookups use first-match in row order.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		movie_id BIGINT,
		title    VARCHAR,
		tags     VARCHAR,
		ratings  VARCHAR DEFAULT '[]'
	)`,
}

// createTables creates the catalog schema if it does not exist.
func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
