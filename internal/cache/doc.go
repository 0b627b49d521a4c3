// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package cache provides a generic in-process LRU cache with TTL.
//
// It backs the in-memory poster URL cache and the per-title recommendation
// cache that is cleared whenever the similarity index is rebuilt.
//
//	posters := cache.NewLRU[string](10000, 24*time.Hour)
//	posters.Add("19995", "https://image.tmdb.org/t/p/w500/abc.jpg")
//	url, ok := posters.Get("19995")
package cache
