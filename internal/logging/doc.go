// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package logging provides centralized zerolog-based structured logging for Cinephile.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", 4803).Msg("Catalog loaded")
//	logging.Error().Err(err).Int64("movie_id", id).Msg("Rating write failed")
//
//	// Request-scoped logging (request_id and correlation_id are added)
//	logging.Ctx(ctx).Info().Str("title", title).Msg("Recommendation served")
//
// # Configuration
//
// Environment variables (mapped through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
//
// # slog bridge
//
// The supervisor tree logs through sutureslog, which requires *slog.Logger.
// NewSlogLogger returns one backed by the global zerolog logger.
package logging
