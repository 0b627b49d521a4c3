// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package poster

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/cinephile/internal/cache"
	"github.com/tomtom215/cinephile/internal/config"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
)

// Cache backend names, also used as metric labels.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Cache stores resolved poster URLs by movie id. An empty url is a valid
// cached value meaning "TMDB has no poster for this movie".
type Cache interface {
	Get(ctx context.Context, movieID int64) (url string, ok bool)
	Set(ctx context.Context, movieID int64, url string)
	Backend() string
}

// NewCache builds the cache selected by cfg.Backend.
func NewCache(ctx context.Context, cfg *config.PosterCacheConfig) (Cache, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryCache(cfg.Capacity, cfg.TTL), nil
	case BackendRedis:
		rc, err := NewRedisCache(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return rc, nil
	case BackendNone, "":
		return NoopCache{}, nil
	default:
		return nil, fmt.Errorf("unknown poster cache backend %q", cfg.Backend)
	}
}

// MemoryCache is a process-local LRU with per-entry TTL.
type MemoryCache struct {
	lru *cache.LRU[string]
}

// NewMemoryCache creates an in-memory poster cache.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	evictions := metrics.CacheEvictions.WithLabelValues("poster")
	return &MemoryCache{
		lru: cache.NewLRU[string](capacity, ttl, cache.WithEvictCallback[string](func(string) {
			evictions.Inc()
		})),
	}
}

func (c *MemoryCache) Get(_ context.Context, movieID int64) (string, bool) {
	return c.lru.Get(cacheKey(movieID))
}

func (c *MemoryCache) Set(_ context.Context, movieID int64, url string) {
	c.lru.Add(cacheKey(movieID), url)
}

func (c *MemoryCache) Backend() string { return BackendMemory }

// Len returns the number of cached entries, expired ones included.
func (c *MemoryCache) Len() int { return c.lru.Len() }

// CleanupExpired drops expired entries and returns how many were removed.
func (c *MemoryCache) CleanupExpired() int { return c.lru.CleanupExpired() }

// RedisCache shares poster URLs between instances through redis.
// Redis errors degrade to cache misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, cfg *config.PosterCacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close() //nolint:errcheck // best-effort cleanup after failed ping
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	return NewRedisCacheFromClient(client, cfg.KeyPrefix, cfg.TTL), nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, movieID int64) (string, bool) {
	url, err := c.client.Get(ctx, c.key(movieID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Warn().Err(err).Int64("movie_id", movieID).Msg("Poster cache read failed")
		}
		return "", false
	}
	return url, true
}

func (c *RedisCache) Set(ctx context.Context, movieID int64, url string) {
	if err := c.client.Set(ctx, c.key(movieID), url, c.ttl).Err(); err != nil {
		logging.Warn().Err(err).Int64("movie_id", movieID).Msg("Poster cache write failed")
	}
}

func (c *RedisCache) Backend() string { return BackendRedis }

// Ping checks the redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(movieID int64) string {
	return c.prefix + cacheKey(movieID)
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, int64) (string, bool) { return "", false }
func (NoopCache) Set(context.Context, int64, string)        {}
func (NoopCache) Backend() string                           { return BackendNone }

func cacheKey(movieID int64) string {
	return strconv.FormatInt(movieID, 10)
}
