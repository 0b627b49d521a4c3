// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"net/http"

	"github.com/tomtom215/cinephile/internal/models"
)

// Movie returns one movie with its rating summary and poster.
//
// @Summary Get a movie with its rating summary
// @Tags Movies
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} APIResponse{data=models.MovieResponse} "Movie"
// @Failure 400 {object} APIResponse "Invalid movie ID"
// @Failure 404 {object} APIResponse "Movie not found"
// @Router /movies/{movieID} [get]
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := movieIDParam(rw, r)
	if !ok {
		return
	}

	movie, err := h.svc.GetMovie(r.Context(), id)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(movie)
}

// MovieRatings returns the raw ratings of a movie and their summary.
//
// @Summary Get raw ratings and their summary
// @Tags Ratings
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} APIResponse{data=models.RatingsResponse} "Ratings"
// @Failure 404 {object} APIResponse "Movie not found"
// @Router /movies/{movieID}/ratings [get]
func (h *Handler) MovieRatings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := movieIDParam(rw, r)
	if !ok {
		return
	}

	resp, err := h.svc.MovieRatings(r.Context(), id)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(resp)
}

// RateMovie appends one rating to a movie.
//
// @Summary Rate a movie
// @Tags Ratings
// @Accept json
// @Produce json
// @Param movieID path int true "Movie ID"
// @Param request body models.RateRequest true "Rating"
// @Success 201 {object} APIResponse{data=models.RatingsResponse} "Rating stored"
// @Failure 400 {object} APIResponse "Invalid movie ID or rating"
// @Failure 404 {object} APIResponse "Movie not found"
// @Failure 500 {object} APIResponse "Database error"
// @Router /movies/{movieID}/ratings [post]
func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := movieIDParam(rw, r)
	if !ok {
		return
	}

	var req models.RateRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	resp, err := h.svc.RateMovie(r.Context(), id, req.Rating)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Created(resp)
}

// RateByTitle appends one rating to the first movie with the given title.
//
// Deprecated: titles are not unique; use POST /api/v1/movies/{movieID}/ratings.
//
// @Summary Rate a movie by title
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body models.RateByTitleRequest true "Title and rating"
// @Success 200 {object} APIResponse{data=models.RatingsResponse} "Rating stored"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 404 {object} APIResponse "Movie not found"
// @Deprecated
// @Router /ratings/by-title [put]
func (h *Handler) RateByTitle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Header().Set("Deprecation", "true")
	rw.Header().Set("Link", `</api/v1/movies/{movieID}/ratings>; rel="successor-version"`)

	var req models.RateByTitleRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	resp, err := h.svc.WriteRatingByTitle(r.Context(), req.Title, req.Rating)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(resp)
}

// RatingSummary aggregates an arbitrary serialized rating list, e.g.
// ?raw=[3, 4]. Malformed input summarizes as "No ratings available".
//
// @Summary Summarize a rating list
// @Tags Ratings
// @Produce json
// @Param raw query string false "Serialized ratings"
// @Success 200 {object} APIResponse{data=models.RatingSummary} "Summary"
// @Router /ratings/summary [get]
func (h *Handler) RatingSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.svc.AggregateRatings(r.URL.Query().Get("raw"))
	NewResponseWriter(w, r).Success(summary.Model())
}

// Poster returns the poster URL for a movie, or 404 when none is available.
//
// @Summary Get a movie's poster URL
// @Tags Movies
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} APIResponse{data=models.PosterResponse} "Poster URL"
// @Failure 404 {object} APIResponse "Poster not available"
// @Router /posters/{movieID} [get]
func (h *Handler) Poster(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := movieIDParam(rw, r)
	if !ok {
		return
	}

	url, found := h.svc.Poster(r.Context(), id)
	if !found {
		rw.NotFound("Poster not available")
		return
	}
	rw.Success(models.PosterResponse{MovieID: id, PosterURL: url})
}
