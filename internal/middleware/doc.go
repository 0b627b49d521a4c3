// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package middleware provides HTTP middleware shared by the JSON API and the
web UI.

Key Components:

  - RequestID: X-Request-ID propagation with request and correlation IDs in
    the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    the chi route pattern so path parameters do not explode label cardinality
  - Compression: pooled gzip for clients that accept it

All middleware use the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
*/
package middleware
