// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/cinephile/docs"
	"github.com/tomtom215/cinephile/internal/api"
	"github.com/tomtom215/cinephile/internal/catalogimport"
	"github.com/tomtom215/cinephile/internal/config"
	"github.com/tomtom215/cinephile/internal/database"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
	"github.com/tomtom215/cinephile/internal/service"
	"github.com/tomtom215/cinephile/internal/supervisor"
	"github.com/tomtom215/cinephile/internal/supervisor/services"
	"github.com/tomtom215/cinephile/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Cinephile")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	importer := catalogimport.NewImporter(&cfg.Catalog, db)
	if stats, imported, err := importer.ImportIfEmpty(ctx); err != nil {
		logging.Error().Err(err).Str("source", cfg.Catalog.ImportPath).Msg("Catalog import failed")
	} else if imported {
		logging.Info().
			Str("format", stats.Format).
			Int64("rows", stats.Rows).
			Dur("duration", stats.Duration()).
			Msg("Catalog imported")
	}

	engine, err := initEngine(cfg, db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	posters, err := initPosters(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize poster client")
	}
	defer posters.Close()

	svcCfg := service.DefaultConfig()
	if cfg.TMDB.MaxConcurrency > 0 {
		svcCfg.PosterConcurrency = cfg.TMDB.MaxConcurrency
	}
	if cfg.TMDB.Timeout > 0 {
		svcCfg.PosterTimeout = cfg.TMDB.Timeout
	}
	svc := service.New(svcCfg, engine, db, posters.client, logging.WithComponent("service"))

	ui, err := web.NewHandler(svc)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load web templates")
	}

	handler := api.NewHandler(api.Dependencies{
		Service: svc,
		Index:   engine,
		DB:      db,
		Posters: posters.client,
		Version: version,
	})
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, mw, ui.Routes())

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(&cfg.Supervisor))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	indexSvc := services.NewIndexService(engine, services.IndexServiceConfig{
		BuildOnStartup:  true,
		RefreshInterval: cfg.Index.RefreshInterval,
	}, logging.WithComponent("index"))
	tree.AddIndexService(indexSvc)
	if posters.memory != nil {
		tree.AddIndexService(services.NewCacheJanitorService(posters.memory, 0, logging.WithComponent("poster-cache")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGHUP {
				reload(ctx, importer, indexSvc)
				continue
			}
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
			return
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, u := range report {
			logging.Warn().Str("service", u.Name).Msg("Service did not stop within timeout")
		}
	}
	logging.Info().Msg("Cinephile stopped")
}

// reload re-imports the catalog source, when one is configured, and asks
// the index service for a rebuild either way.
func reload(ctx context.Context, importer *catalogimport.Importer, indexSvc *services.IndexService) {
	if importer.Configured() {
		stats, err := importer.Import(ctx)
		if err != nil {
			logging.Error().Err(err).Msg("Catalog re-import failed, keeping current catalog")
			return
		}
		logging.Info().Str("format", stats.Format).Int64("rows", stats.Rows).Msg("Catalog re-imported")
	}
	if !indexSvc.Trigger() {
		logging.Debug().Msg("Index rebuild already pending")
	}
}
