// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package supervisor runs the long-lived services of Cinephile under suture v4.

# Overview

Services are grouped into two layers so a failing rebuild never takes the
HTTP listener down with it:

	RootSupervisor ("cinephile")
	├── IndexSupervisor ("index-layer")
	│   ├── IndexService         builds and rebuilds the similarity snapshot
	│   └── CacheJanitorService  expires in-memory poster cache entries
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with suture's failure decay and backoff.
Supervisor events are logged through sutureslog, which is bridged to the
application's zerolog logger by logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    FailureThreshold: cfg.Supervisor.FailureThreshold,
	    FailureBackoff:   cfg.Supervisor.FailureBackoff,
	    ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	tree.AddIndexService(indexSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
