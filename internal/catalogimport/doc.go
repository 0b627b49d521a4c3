// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package catalogimport loads a movie catalog from a CSV file or a legacy
// SQLite database into the DuckDB catalog store.
//
// Both sources are read by DuckDB itself: CSV through read_csv_auto and
// SQLite through the sqlite_scanner extension, attached read-only. The
// source must provide title and tags columns; movie_id and ratings are
// optional and default to NULL and "[]". Column names match case-insensitively.
//
// An import replaces the whole catalog in one transaction and preserves the
// source row order. Callers rebuild the similarity index afterwards.
//
//	importer := catalogimport.NewImporter(&cfg.Catalog, db)
//	stats, err := importer.Import(ctx)
package catalogimport
