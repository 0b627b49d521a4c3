// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package services provides suture.Service wrappers for Cinephile components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so supervisor events name the service.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve

Index (IndexService):
  - Builds the similarity snapshot on startup
  - Rebuilds on Trigger, e.g. after a catalog import or SIGHUP
  - Optionally rebuilds every refresh interval
  - Retries a failed startup build until one snapshot exists

Cache Janitor (CacheJanitorService):
  - Periodically drops expired poster cache entries

# Shutdown

Serve returns ctx.Err() once the supervisor cancels the context. Any other
returned error is a failure and suture restarts the service with backoff.
*/
package services
