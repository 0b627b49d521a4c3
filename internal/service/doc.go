// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package service implements the display contract shared by the web UI and the
JSON API.

It composes the recommendation engine, the catalog store and the poster client:

  - Titles lists every catalog title in row order
  - Recommend returns parallel title and poster lists for a query title;
    an empty poster string means "not available"
  - AggregateRatings summarizes a raw rating list as stars
  - WriteRating appends one rating to a movie, keyed by movie id

Posters for one recommendation are resolved concurrently with a bounded
errgroup under a per-request timeout. A slow or failing poster lookup only
blanks that poster.
*/
package service
