// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinephile/internal/models"
)

// healthPingTimeout bounds the store ping in health checks.
const healthPingTimeout = 2 * time.Second

// Health returns the overall service status. It always answers 200; the
// status field is "healthy" or "degraded".
//
// @Summary Get service health
// @Description Returns database connectivity, index version and age, catalog size and the TMDB circuit breaker state
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Version:       h.version,
		DatabaseOK:    h.pingDB(r.Context()),
		PosterBreaker: "disabled",
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	if snap := h.index.Snapshot(); snap != nil {
		health.IndexReady = true
		health.IndexVersion = snap.Version
		health.IndexBuiltAt = snap.BuiltAt
		health.IndexAge = time.Since(snap.BuiltAt).Round(time.Second).String()
		health.CatalogSize = snap.Len()
		health.VocabularySize = snap.VocabularySize()
	}
	if h.posters != nil {
		health.PosterBreaker = h.posters.BreakerState()
	}

	health.Status = "healthy"
	if !health.DatabaseOK || !health.IndexReady {
		health.Status = "degraded"
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive answers 200 while the process is running, regardless of
// dependencies.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Process is running"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 once the similarity index is built and the store
// answers, 503 before that.
//
// @Summary Readiness check
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Index built and database reachable"
// @Failure 503 {object} APIResponse "Index not built or database down"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.index.Snapshot() == nil {
		status := h.index.Status()
		msg := "Similarity index not built yet"
		if status.LastError != "" {
			msg += ": last build failed"
		}
		rw.ServiceUnavailable(msg)
		return
	}
	if !h.pingDB(r.Context()) {
		rw.ServiceUnavailable("Database unavailable")
		return
	}

	rw.Success(map[string]interface{}{
		"ready":         true,
		"index_version": h.index.Snapshot().Version,
	})
}

func (h *Handler) pingDB(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.db.Ping(ctx) == nil
}
