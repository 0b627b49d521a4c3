// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package database provides the DuckDB-backed catalog store for Cinephile.
//
// # Overview
//
// The catalog is a single table:
//
//	movies(movie_id BIGINT, title VARCHAR, tags VARCHAR, ratings VARCHAR)
//
// Ratings are stored serialized, e.g. "[3, 4]". movie_id and title are not
// unique; every keyed lookup returns the first matching row in row order.
//
// # Files
//
//   - database.go: connection lifecycle
//   - database_schema.go: table creation
//   - database_connection.go: pool configuration and conflict detection
//   - database_extensions.go: sqlite_scanner loading and ATTACH for imports
//   - movies.go: catalog reads
//   - ratings.go: the transactional rating writer
//   - catalog.go: whole-catalog replacement for imports
//   - errors.go: classified errors
//
// # Errors
//
// Every exported operation returns nil or a *Error whose Kind is one of
// ErrNotFound, ErrValidation or ErrStorage:
//
//	_, err := db.AppendRating(ctx, 19995, 4)
//	switch {
//	case errors.Is(err, database.ErrNotFound):
//	    // no row carries that movie_id
//	case errors.Is(err, database.ErrValidation):
//	    // bad id or rating outside 1..5
//	case errors.Is(err, database.ErrStorage):
//	    // driver failure; the transaction was rolled back
//	}
//
// # Thread Safety
//
// DB is safe for concurrent use. Rating writes run in their own transaction
// and retry once on a DuckDB transaction conflict.
package database
