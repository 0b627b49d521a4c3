// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package recommend serves content-based movie recommendations from an
// immutable similarity snapshot.
//
// # Architecture
//
// The Engine loads the catalog through a CatalogProvider, builds a
// similarity.Index over the movies' tags, and publishes the result as a
// Snapshot behind an atomic pointer. Queries read the current snapshot
// without locking; a rebuild swaps in a new snapshot and never mutates the
// old one.
//
// # Ranking
//
// For a query title the engine finds the first catalog row with exactly that
// title, orders every other row by its similarity score (descending, ties in
// catalog order), drops rows that share the query title, and keeps the top N.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), db, logger)
//	if err := engine.Build(ctx); err != nil {
//	    return err
//	}
//	results, found := engine.Recommend(ctx, "Avatar")
//
// # Thread Safety
//
// The engine is safe for concurrent use. Builds are serialized; readers see
// either the previous snapshot or the new one.
package recommend
