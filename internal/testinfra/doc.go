// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package testinfra starts throwaway containers for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/poster/...
//
// # Redis
//
// NewRedisContainer runs a disposable redis for the shared poster cache:
//
//	func TestRedisCache(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    rc, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, rc)
//
//	    cache, err := poster.NewRedisCache(ctx, &config.PosterCacheConfig{RedisAddr: rc.Addr})
//	    // ...
//	}
//
// Tests skip when no Docker daemon is reachable. The first run pulls the image.
package testinfra
