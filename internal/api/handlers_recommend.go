// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/recommend"
)

// Titles returns every catalog title in row order.
//
// @Summary List catalog titles
// @Description Returns every catalog title in row order, duplicates included
// @Tags Recommendations
// @Produce json
// @Success 200 {object} APIResponse{data=[]string} "Titles"
// @Router /titles [get]
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	titles := h.svc.Titles(r.Context())
	NewResponseWriter(w, r).SuccessWithCount(titles, len(titles))
}

// Recommendations returns up to 20 movies similar to ?title=. An unknown
// title is not an error: the response has found=false and empty lists.
//
// @Summary Recommend movies by title
// @Description Ranks the catalog against the first movie with the given title
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact movie title"
// @Success 200 {object} APIResponse{data=models.RecommendationsResponse} "Up to 20 recommendations"
// @Failure 400 {object} APIResponse "Missing title"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query := models.RecommendQuery{Title: r.URL.Query().Get("title")}
	if !validate(rw, &query) {
		return
	}

	items, found := h.svc.RecommendDetailed(r.Context(), query.Title)

	resp := models.RecommendationsResponse{
		Query:   query.Title,
		Found:   found,
		Items:   items,
		Titles:  make([]string, len(items)),
		Posters: make([]string, len(items)),
	}
	for i := range items {
		resp.Titles[i] = items[i].Title
		resp.Posters[i] = items[i].PosterURL
	}

	rw.SuccessWithCount(resp, len(items))
}

// SimilarMovies returns up to 20 movies similar to the movie with the given
// ID. Unlike Recommendations, an unknown ID is a 404.
//
// @Summary Recommend movies similar to a movie ID
// @Description Ranks the catalog against the row holding movieID, excluding rows that share its title
// @Tags Recommendations
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} APIResponse{data=models.SimilarResponse} "Up to 20 recommendations"
// @Failure 400 {object} APIResponse "Invalid movie ID"
// @Failure 404 {object} APIResponse "Movie not in the similarity index"
// @Failure 503 {object} APIResponse "Similarity index not built"
// @Router /movies/{movieID}/similar [get]
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := movieIDParam(rw, r)
	if !ok {
		return
	}

	items, err := h.svc.Similar(r.Context(), id)
	switch {
	case errors.Is(err, recommend.ErrNotReady):
		rw.ServiceUnavailable("Similarity index not built yet")
		return
	case errors.Is(err, recommend.ErrUnknownMovie):
		rw.NotFound("Movie not in similarity index")
		return
	case err != nil:
		rw.Error(http.StatusInternalServerError, ErrCodeInternalError, "Recommendation failed")
		return
	}

	rw.SuccessWithCount(models.SimilarResponse{MovieID: id, Items: items}, len(items))
}
