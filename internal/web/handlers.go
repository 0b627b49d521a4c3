// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinephile/internal/database"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/middleware"
	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
	"github.com/tomtom215/cinephile/internal/validation"
)

// maxFormSize bounds POST /rate bodies.
const maxFormSize = 4 << 10

// Rating outcomes carried in the redirect after POST /rate.
const (
	statusRated    = "rated"
	statusInvalid  = "invalid"
	statusNotFound = "not_found"
	statusFailed   = "failed"
)

var flashes = map[string]flash{
	statusRated:    {Kind: "ok", Message: "Thanks! Your rating was saved."},
	statusInvalid:  {Kind: "error", Message: "Please choose a rating from 1 to 5 stars."},
	statusNotFound: {Kind: "error", Message: "That movie is no longer in the catalog."},
	statusFailed:   {Kind: "error", Message: "Your rating could not be saved. Please try again."},
}

// Service is what the UI needs from the recommendation service.
type Service interface {
	Titles(ctx context.Context) []string
	RecommendDetailed(ctx context.Context, title string) ([]models.Recommendation, bool)
	RatingSummary(ctx context.Context, movieID int64) ratings.Summary
	WriteRating(ctx context.Context, idText string, value int) error
}

// RateForm is the POST /rate form.
type RateForm struct {
	MovieID string `validate:"required"`
	Rating  int    `validate:"min=1,max=5"`
	Title   string `validate:"max=500"`
}

// Handler serves the UI pages.
type Handler struct {
	svc      Service
	renderer *renderer
}

// NewHandler parses the embedded templates and returns a Handler.
func NewHandler(svc Service) (*Handler, error) {
	rn, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, renderer: rn}, nil
}

// Routes returns the UI router. It is mounted at / next to the JSON API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Compression)
	r.Use(middleware.PrometheusMetrics)

	r.Get("/", h.Index)
	r.Get("/recommend", h.Recommend)
	r.Post("/rate", h.Rate)

	return r
}

// Index shows the title picker.
//
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := newPage(h.svc.Titles(r.Context()))
	data.Flash = flashFor(r.URL.Query().Get("status"))
	h.renderer.render(w, r, http.StatusOK, data)
}

// Recommend shows up to 20 recommendations for ?title= in rows of Columns.
// An empty title falls back to the picker.
//
// GET /recommend?title=
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	title := query.Get("title")

	data := newPage(h.svc.Titles(ctx))
	data.Flash = flashFor(query.Get("status"))
	if strings.TrimSpace(title) == "" {
		h.renderer.render(w, r, http.StatusOK, data)
		return
	}

	data.Query = title
	data.Searched = true

	items, found := h.svc.RecommendDetailed(ctx, title)
	data.Found = found
	if !found {
		h.renderer.render(w, r, http.StatusNotFound, data)
		return
	}

	cards := make([]card, len(items))
	for i, item := range items {
		c := card{
			Title:     item.Title,
			Lines:     FormatTitle(item.Title),
			MovieID:   item.MovieID,
			PosterURL: item.PosterURL,
			Rating:    ratings.Aggregate(nil),
			Rateable:  item.MovieID > 0,
		}
		if c.Rateable {
			c.Rating = h.svc.RatingSummary(ctx, item.MovieID)
		}
		cards[i] = c
	}
	data.Rows = chunk(cards, Columns)

	h.renderer.render(w, r, http.StatusOK, data)
}

// Rate records a rating and redirects back to the results it was made from.
//
// POST /rate
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := RateForm{
		MovieID: strings.TrimSpace(r.PostForm.Get("movie_id")),
		Title:   r.PostForm.Get("title"),
	}
	rating, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("rating")))
	if err == nil {
		form.Rating = rating
	}

	status := statusRated
	if verr := validation.ValidateStruct(&form); verr != nil {
		logging.Ctx(r.Context()).Debug().Err(verr).Msg("rejected rating form")
		status = statusInvalid
	} else if err := h.svc.WriteRating(r.Context(), form.MovieID, form.Rating); err != nil {
		status = rateStatus(err)
	}

	http.Redirect(w, r, backURL(form.Title, status), http.StatusSeeOther)
}

func flashFor(status string) *flash {
	f, ok := flashes[status]
	if !ok {
		return nil
	}
	return &f
}

func rateStatus(err error) string {
	switch {
	case errors.Is(err, database.ErrValidation):
		return statusInvalid
	case errors.Is(err, database.ErrNotFound):
		return statusNotFound
	default:
		return statusFailed
	}
}

// backURL points at the results page for title, or the picker when there
// is none.
func backURL(title, status string) string {
	q := url.Values{}
	if strings.TrimSpace(title) == "" {
		q.Set("status", status)
		return "/?" + q.Encode()
	}
	q.Set("title", title)
	q.Set("status", status)
	return "/recommend?" + q.Encode()
}
