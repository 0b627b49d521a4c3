// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// IndexBuilder builds and publishes a similarity snapshot.
// Satisfied by *recommend.Engine.
type IndexBuilder interface {
	Build(ctx context.Context) error
}

// IndexServiceConfig holds configuration for the index service.
type IndexServiceConfig struct {
	// BuildOnStartup builds a snapshot as soon as the service starts.
	BuildOnStartup bool

	// RefreshInterval rebuilds periodically. Zero disables it.
	RefreshInterval time.Duration

	// RetryInterval is the wait before retrying a failed build while no
	// snapshot has been published yet. Default: 30s
	RetryInterval time.Duration
}

// IndexService keeps the similarity snapshot current. Requests read the
// published snapshot, so a failed rebuild leaves the previous one serving.
type IndexService struct {
	builder IndexBuilder
	config  IndexServiceConfig
	logger  zerolog.Logger
	name    string

	// trigger holds at most one pending rebuild request. It outlives
	// restarts of Serve.
	trigger chan struct{}
	built   bool
}

// NewIndexService creates a new index service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndexService(builder IndexBuilder, cfg IndexServiceConfig, logger zerolog.Logger) *IndexService {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 30 * time.Second
	}
	return &IndexService{
		builder: builder,
		config:  cfg,
		logger:  logger.With().Str("service", "index").Logger(),
		name:    "index-service",
		trigger: make(chan struct{}, 1),
	}
}

// Trigger requests a rebuild. It never blocks; it returns false when a
// rebuild is already pending.
func (s *IndexService) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Serve implements suture.Service.
func (s *IndexService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("build_on_startup", s.config.BuildOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("index service starting")

	var retry <-chan time.Time
	if s.config.BuildOnStartup && !s.built {
		if err := s.build(ctx, "startup"); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			retry = time.After(s.config.RetryInterval)
		}
	}

	var refresh <-chan time.Time
	if s.config.RefreshInterval > 0 {
		ticker := time.NewTicker(s.config.RefreshInterval)
		defer ticker.Stop()
		refresh = ticker.C
	}

	for {
		var reason string
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("index service shutting down")
			return ctx.Err()
		case <-s.trigger:
			reason = "trigger"
		case <-refresh:
			reason = "refresh"
		case <-retry:
			reason = "retry"
		}

		err := s.build(ctx, reason)
		switch {
		case err == nil:
			retry = nil
		case ctx.Err() != nil:
			return ctx.Err()
		case !s.built:
			retry = time.After(s.config.RetryInterval)
		}
	}
}

// build runs one build. Failures are logged here and never reach the
// supervisor.
func (s *IndexService) build(ctx context.Context, reason string) error {
	start := time.Now()
	err := s.builder.Build(ctx)
	if err != nil {
		event := s.logger.Warn()
		if errors.Is(err, context.Canceled) {
			event = s.logger.Debug()
		}
		event.Err(err).Str("reason", reason).Bool("has_snapshot", s.built).Msg("index build failed")
		return err
	}

	s.built = true
	s.logger.Info().Str("reason", reason).Dur("duration", time.Since(start)).Msg("index rebuilt")
	return nil
}

// String returns the service name for logging.
func (s *IndexService) String() string {
	return s.name
}
