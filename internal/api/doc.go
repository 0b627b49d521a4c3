// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package api provides the JSON REST API for Cinephile.

Endpoints live under /api/v1 and wrap every payload in a standard envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {...}, "request_id": "..."}}

Routes:

  - GET  /api/v1/titles                          all titles in catalog order
  - GET  /api/v1/recommendations?title=          ranked recommendations with posters
  - GET  /api/v1/movies/{movieID}                movie, rating summary and poster
  - GET  /api/v1/movies/{movieID}/ratings        raw ratings and summary
  - POST /api/v1/movies/{movieID}/ratings        append a rating, {"rating": 1..5}
  - PUT  /api/v1/ratings/by-title                deprecated title-keyed rating write
  - GET  /api/v1/ratings/summary?raw=            aggregate an arbitrary rating list
  - GET  /api/v1/posters/{movieID}               poster URL or 404
  - GET  /api/v1/health, /health/live, /health/ready
  - GET  /metrics                                Prometheus exposition

Error mapping:

Rating writes return classified errors from the database package.
database.ErrValidation maps to 400 VALIDATION_FAILED, database.ErrNotFound to
404 NOT_FOUND and database.ErrStorage (or anything unclassified) to 500
DATABASE_ERROR.

Middleware stack (outermost first): request ID, real IP, panic recovery, CORS,
then per route group rate limiting (go-chi/httprate), security headers and
Prometheus metrics labelled by route pattern.
*/
package api
