// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package main is the entry point for the Cinephile server.

Cinephile recommends movies by the similarity of their tag text. It serves a
small server-rendered UI, a JSON API under /api/v1, and Prometheus metrics at
/metrics.

# Application Architecture

	RootSupervisor ("cinephile")
	├── IndexSupervisor ("index-layer")
	│   ├── IndexService         similarity snapshot builds
	│   └── CacheJanitorService  poster cache expiry (memory backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml, .env and environment
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB catalog store
 4. Catalog import: CSV or SQLite source when the catalog is empty
 5. Recommendation engine and poster client (TMDB, circuit breaker, cache)
 6. Supervisor tree with the index and HTTP services

# Configuration

	PORT=8501                         # HTTP server port
	DUCKDB_PATH=/data/cinephile.duckdb
	CATALOG_IMPORT_PATH=movies.db     # CSV or SQLite source
	TMDB_API_KEY=<key>                # posters are skipped without it
	POSTER_CACHE_BACKEND=memory       # memory, redis, or none
	INDEX_REFRESH_INTERVAL=0          # periodic rebuilds, off by default
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree, draining in-flight requests.
SIGHUP re-imports the configured catalog source and rebuilds the index.
*/
package main
