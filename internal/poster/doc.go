// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package poster resolves movie poster image URLs through The Movie Database (TMDB).

A lookup never fails from the caller's point of view: Client.Poster returns the
poster URL and true, or an empty string and false. Missing ids, a missing API
key, network errors, non-2xx responses, malformed JSON, an empty poster_path and
an open circuit breaker all collapse to "absent". The cause is logged and counted
in the poster_fetch_total metric.

Resilience:
  - Client-side throttle with golang.org/x/time/rate (requests per second + burst)
  - Circuit breaker (sony/gobreaker/v2) named "tmdb-api"; 404 responses do not
    count as breaker failures
  - Result cache (memory LRU or redis); absent posters are cached as empty values
    so unknown ids do not hit TMDB on every page view

Example:

	c, err := poster.NewClient(&cfg.TMDB, poster.NewMemoryCache(10000, 24*time.Hour))
	url, ok := c.Poster(ctx, 19995)
*/
package poster
