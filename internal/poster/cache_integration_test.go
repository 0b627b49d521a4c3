// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

//go:build integration

package poster

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/cinephile/internal/config"
	"github.com/tomtom215/cinephile/internal/testinfra"
)

func TestRedisCache_Container(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	rc, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("NewRedisContainer() error = %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, rc)

	cfg := &config.PosterCacheConfig{
		Backend:   BackendRedis,
		TTL:       time.Minute,
		RedisAddr: rc.Addr,
		KeyPrefix: "cinephile:it:",
	}

	cache, err := NewCache(ctx, cfg)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	rcache, ok := cache.(*RedisCache)
	if !ok {
		t.Fatalf("NewCache() = %T, want *RedisCache", cache)
	}
	defer rcache.Close()

	if err := rcache.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	if _, hit := cache.Get(ctx, 19995); hit {
		t.Fatal("Get() on empty redis reported a hit")
	}

	cache.Set(ctx, 19995, "https://image.tmdb.org/t/p/w500/avatar.jpg")
	cache.Set(ctx, 285, "")

	if url, hit := cache.Get(ctx, 19995); !hit || url != "https://image.tmdb.org/t/p/w500/avatar.jpg" {
		t.Errorf("Get(19995) = (%q, %v), want stored URL", url, hit)
	}
	if url, hit := cache.Get(ctx, 285); !hit || url != "" {
		t.Errorf("Get(285) = (%q, %v), want negative entry", url, hit)
	}

	// A second instance sharing the prefix sees the same entries.
	other, err := NewRedisCache(ctx, cfg)
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer other.Close()

	if url, hit := other.Get(ctx, 19995); !hit || url == "" {
		t.Errorf("second instance Get(19995) = (%q, %v), want shared hit", url, hit)
	}
}
