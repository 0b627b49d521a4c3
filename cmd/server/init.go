// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinephile/internal/config"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/poster"
	"github.com/tomtom215/cinephile/internal/recommend"
)

// initEngine creates the recommendation engine over the catalog store.
// The first build happens in the index service.
func initEngine(cfg *config.Config, provider recommend.CatalogProvider) (*recommend.Engine, error) {
	engineCfg := recommend.DefaultConfig()
	engineCfg.TopN = cfg.Index.TopN
	engineCfg.MaxFeatures = cfg.Index.MaxFeatures
	engineCfg.Workers = cfg.Index.Workers
	engineCfg.BuildTimeout = cfg.Index.BuildTimeout

	logging.Info().
		Int("top_n", engineCfg.TopN).
		Int("max_features", engineCfg.MaxFeatures).
		Dur("refresh_interval", cfg.Index.RefreshInterval).
		Msg("Initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, provider, logging.WithComponent("recommend"))
	if err != nil {
		return nil, err
	}
	engine.OnRebuild(func(snap *recommend.Snapshot) {
		logging.Debug().Uint64("version", snap.Version).Int("movies", snap.Len()).Msg("Snapshot swapped in")
	})
	return engine, nil
}

// posterComponents holds the poster client and its cache.
type posterComponents struct {
	client *poster.Client
	cache  poster.Cache

	// memory is set for the in-process cache, which needs periodic expiry.
	memory *poster.MemoryCache
}

// initPosters builds the poster cache and the TMDB client. A Redis cache
// that cannot be reached falls back to memory so posters keep working.
func initPosters(ctx context.Context, cfg *config.Config) (*posterComponents, error) {
	cache, err := poster.NewCache(ctx, &cfg.PosterCache)
	if err != nil {
		if cfg.PosterCache.Backend != poster.BackendRedis {
			return nil, fmt.Errorf("create poster cache: %w", err)
		}
		logging.Warn().Err(err).Str("addr", cfg.PosterCache.RedisAddr).Msg("Redis unavailable, using in-memory poster cache")
		cache = poster.NewMemoryCache(cfg.PosterCache.Capacity, cfg.PosterCache.TTL)
	}

	pc := &posterComponents{
		client: poster.NewClient(&cfg.TMDB, cache),
		cache:  cache,
	}
	if mem, ok := cache.(*poster.MemoryCache); ok {
		pc.memory = mem
	}

	if pc.client.Enabled() {
		logging.Info().Str("cache", cache.Backend()).Msg("Poster lookups enabled")
	} else {
		logging.Info().Msg("Poster lookups disabled (no TMDB_API_KEY), results show no posters")
	}
	return pc, nil
}

// Close releases the Redis connection, if any.
func (p *posterComponents) Close() {
	if rc, ok := p.cache.(*poster.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing Redis poster cache")
		}
	}
}
