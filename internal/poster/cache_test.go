// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package poster

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/cinephile/internal/config"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewMemoryCache(2, time.Hour)

	if _, ok := c.Get(ctx, 1); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	c.Set(ctx, 1, "https://img/1.jpg")
	c.Set(ctx, 2, "")
	if url, ok := c.Get(ctx, 1); !ok || url != "https://img/1.jpg" {
		t.Errorf("Get(1) = (%q, %v), want hit", url, ok)
	}
	if url, ok := c.Get(ctx, 2); !ok || url != "" {
		t.Errorf("Get(2) = (%q, %v), want cached empty value", url, ok)
	}

	c.Set(ctx, 3, "https://img/3.jpg")
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after eviction", c.Len())
	}
	if c.Backend() != BackendMemory {
		t.Errorf("Backend() = %q", c.Backend())
	}
}

func TestNoopCache(t *testing.T) {
	t.Parallel()

	var c NoopCache
	c.Set(context.Background(), 1, "x")
	if _, ok := c.Get(context.Background(), 1); ok {
		t.Error("NoopCache stored a value")
	}
}

func TestNewCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		backend string
		want    string
		wantErr bool
	}{
		{backend: "memory", want: BackendMemory},
		{backend: "none", want: BackendNone},
		{backend: "", want: BackendNone},
		{backend: "memcached", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			t.Parallel()
			c, err := NewCache(context.Background(), &config.PosterCacheConfig{
				Backend:  tt.backend,
				Capacity: 10,
				TTL:      time.Minute,
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewCache() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCache() error = %v", err)
			}
			if c.Backend() != tt.want {
				t.Errorf("Backend() = %q, want %q", c.Backend(), tt.want)
			}
		})
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), &config.PosterCacheConfig{
		Backend:   "redis",
		RedisAddr: "127.0.0.1:1",
		TTL:       time.Minute,
	})
	if err == nil {
		t.Fatal("NewRedisCache() against a closed port succeeded")
	}
}

// TestRedisCache runs against a real server when REDIS_ADDR is set.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	prefix := "cinephile:test:" + time.Now().Format("150405.000000") + ":"
	c, err := NewRedisCache(ctx, &config.PosterCacheConfig{
		Backend:   "redis",
		RedisAddr: addr,
		KeyPrefix: prefix,
		TTL:       time.Minute,
	})
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	t.Cleanup(func() {
		client := redis.NewClient(&redis.Options{Addr: addr})
		client.Del(ctx, prefix+"1", prefix+"2")
		_ = client.Close()
		_ = c.Close()
	})

	if _, ok := c.Get(ctx, 1); ok {
		t.Fatal("Get() before Set() reported a hit")
	}
	c.Set(ctx, 1, "https://img/1.jpg")
	c.Set(ctx, 2, "")

	if url, ok := c.Get(ctx, 1); !ok || url != "https://img/1.jpg" {
		t.Errorf("Get(1) = (%q, %v), want hit", url, ok)
	}
	if url, ok := c.Get(ctx, 2); !ok || url != "" {
		t.Errorf("Get(2) = (%q, %v), want cached empty value", url, ok)
	}
	if err := c.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
