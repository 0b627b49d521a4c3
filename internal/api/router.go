// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/cinephile/internal/middleware"
)

// Router assembles the HTTP routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	web           http.Handler
}

// NewRouter creates a router. web, when non-nil, is mounted at / for the
// server-rendered UI.
func NewRouter(handler *Handler, mw *ChiMiddleware, web http.Handler) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, web: web}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/titles", router.handler.Titles)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/ratings/summary", router.handler.RatingSummary)
		r.Get("/posters/{movieID}", router.handler.Poster)

		r.Route("/movies/{movieID}", func(r chi.Router) {
			r.Get("/", router.handler.Movie)
			r.Get("/similar", router.handler.SimilarMovies)
			r.Get("/ratings", router.handler.MovieRatings)
			r.With(router.chiMiddleware.RateLimitWrite()).Post("/ratings", router.handler.RateMovie)
		})

		r.With(router.chiMiddleware.RateLimitWrite()).Put("/ratings/by-title", router.handler.RateByTitle)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI, backed by the spec registered in the docs package
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	if router.web != nil {
		r.Mount("/", router.web)
	}

	return r
}
