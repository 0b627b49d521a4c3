// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// General API information for swag. The generated description lives in
// the docs package and is served at /swagger/doc.json.
//
// @title Cinephile API
// @version 1.0
// @description Content-based movie recommendations over a tag similarity index, with star ratings and TMDB posters.
// @description
// @description ## Rate Limiting
// @description
// @description Reads and writes are limited per client IP. Rate limit headers are included in responses.
// @description
// @description ## Error Responses
// @description
// @description All responses use the same envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "NOT_FOUND", "message": "Movie not found", "request_id": "..."},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T12:00:00Z", "duration_ms": 1}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinephile/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness
//
// @tag.name Recommendations
// @tag.description Content-based recommendations over the similarity index
//
// @tag.name Movies
// @tag.description Catalog rows and posters
//
// @tag.name Ratings
// @tag.description Rating submission and aggregation

package main
