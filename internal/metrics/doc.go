// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto at
// package init. Families:
//
//   - duckdb_*: catalog store query latency and errors
//   - similarity_index_*: build duration, outcome, vocabulary size
//   - recommendations_total, ratings_written_total: domain outcomes
//   - api_*: HTTP request counts, latency, rate limit rejections
//   - poster_fetch_total, tmdb_request_duration_seconds: poster service
//   - poster_cache_*, cache_evictions_total: cache efficiency
//   - circuit_breaker_*: TMDB breaker state
//
// Example:
//
//	start := time.Now()
//	_, err := db.ExecContext(ctx, query, args...)
//	metrics.RecordDBQuery("update", "movies", time.Since(start), err)
package metrics
