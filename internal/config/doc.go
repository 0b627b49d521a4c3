// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package config loads Cinephile configuration with Koanf v2.
//
// Sources are layered: built-in defaults, then an optional YAML file
// (config.yaml, /etc/cinephile/config.yaml, or CONFIG_PATH), then
// environment variables. A .env file is read into the environment first.
//
// Commonly used environment variables:
//
//	DUCKDB_PATH            catalog database file (default /data/cinephile.duckdb)
//	CATALOG_IMPORT_PATH    CSV or SQLite dataset imported when the catalog is empty
//	TMDB_API_KEY           key for poster lookups; posters are omitted when unset
//	POSTER_CACHE_BACKEND   memory, redis or none
//	HTTP_PORT              listen port (default 8501)
//	LOG_LEVEL, LOG_FORMAT  logging configuration
//
// Example YAML:
//
//	index:
//	  max_features: 5000
//	  top_n: 20
//	tmdb:
//	  api_key: "..."
//	poster_cache:
//	  backend: redis
//	  redis_addr: redis:6379
package config
