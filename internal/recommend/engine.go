// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/similarity"
)

// CatalogProvider loads the full catalog in row order.
// This is implemented by the database layer.
type CatalogProvider interface {
	LoadCatalog(ctx context.Context) ([]models.Movie, error)
}

// Engine builds and serves similarity snapshots. It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider CatalogProvider

	snapshot atomic.Pointer[Snapshot]
	version  atomic.Uint64

	// buildMu serializes builds.
	buildMu sync.Mutex

	statusMu sync.RWMutex
	status   BuildStatus

	listenersMu sync.RWMutex
	listeners   []func(*Snapshot)

	requestCount  atomic.Int64
	unknownCount  atomic.Int64
	unknownIDs    atomic.Int64
	notReadyCount atomic.Int64
	buildCount    atomic.Int64
	failedBuilds  atomic.Int64
}

// NewEngine creates a new recommendation engine. provider may be nil when
// the caller only uses BuildFrom.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, provider CatalogProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		provider: provider,
	}, nil
}

// OnRebuild registers fn to be called after every successful build with the
// newly published snapshot.
func (e *Engine) OnRebuild(fn func(*Snapshot)) {
	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Build loads the catalog from the provider and publishes a new snapshot.
func (e *Engine) Build(ctx context.Context) error {
	if e.provider == nil {
		return fmt.Errorf("catalog provider not set")
	}

	movies, err := e.provider.LoadCatalog(ctx)
	if err != nil {
		e.recordFailure(err, 0)
		return fmt.Errorf("load catalog: %w", err)
	}
	return e.BuildFrom(ctx, movies)
}

// BuildFrom builds a snapshot from movies and publishes it. On failure the
// previously published snapshot stays in place.
func (e *Engine) BuildFrom(ctx context.Context, movies []models.Movie) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	e.setBuilding(true)
	defer e.setBuilding(false)

	if e.config.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.BuildTimeout)
		defer cancel()
	}

	start := time.Now()
	docs := make([]similarity.Document, len(movies))
	for i := range movies {
		docs[i] = similarity.Document{MovieID: movies[i].MovieID, Tags: movies[i].Tags}
	}

	index, err := similarity.Build(ctx, docs, similarity.Options{
		MaxFeatures: e.config.MaxFeatures,
		Workers:     e.config.Workers,
	})
	elapsed := time.Since(start)
	if err != nil {
		e.recordFailure(err, elapsed)
		return fmt.Errorf("build similarity index: %w", err)
	}

	snap := newSnapshot(movies, index)
	snap.Version = e.version.Add(1)
	snap.BuiltAt = time.Now()
	snap.BuildDuration = elapsed
	e.snapshot.Store(snap)

	e.buildCount.Add(1)
	metrics.RecordIndexBuild(elapsed, snap.Len(), index.VocabularySize(), nil)

	e.statusMu.Lock()
	e.status.Version = snap.Version
	e.status.Rows = snap.Len()
	e.status.LastBuiltAt = snap.BuiltAt
	e.status.LastDuration = elapsed
	e.status.LastError = ""
	e.statusMu.Unlock()

	e.logger.Info().
		Uint64("version", snap.Version).
		Int("movies", snap.Len()).
		Int("vocabulary", index.VocabularySize()).
		Int("empty_rows", index.EmptyRows()).
		Dur("duration", elapsed).
		Msg("similarity index published")

	e.listenersMu.RLock()
	listeners := e.listeners
	e.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(snap)
	}

	return nil
}

func (e *Engine) recordFailure(err error, elapsed time.Duration) {
	e.failedBuilds.Add(1)
	metrics.RecordIndexBuild(elapsed, 0, 0, err)

	e.statusMu.Lock()
	e.status.LastError = err.Error()
	e.statusMu.Unlock()

	e.logger.Error().Err(err).Dur("duration", elapsed).Msg("similarity index build failed")
}

func (e *Engine) setBuilding(building bool) {
	e.statusMu.Lock()
	e.status.Building = building
	e.statusMu.Unlock()
}

// Snapshot returns the current snapshot, or nil before the first build.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Ready reports whether a snapshot has been published.
func (e *Engine) Ready() bool {
	return e.snapshot.Load() != nil
}

// Recommend returns up to TopN rows most similar to the first row titled
// title. found is false when the title is unknown or no snapshot exists yet.
func (e *Engine) Recommend(ctx context.Context, title string) (results []Result, found bool) {
	e.requestCount.Add(1)

	snap := e.snapshot.Load()
	if snap == nil {
		e.notReadyCount.Add(1)
		metrics.RecommendationsTotal.WithLabelValues("not_ready").Inc()
		logging.Ctx(ctx).Warn().Str("title", title).Msg("recommendation requested before index build")
		return nil, false
	}

	results, found = snap.Recommend(title, e.config.TopN)
	if !found {
		e.unknownCount.Add(1)
		metrics.RecommendationsTotal.WithLabelValues("unknown_title").Inc()
		logging.Ctx(ctx).Debug().Str("title", title).Msg("unknown title")
		return nil, false
	}

	metrics.RecommendationsTotal.WithLabelValues("served").Inc()
	logging.Ctx(ctx).Debug().
		Str("title", title).
		Int("returned", len(results)).
		Uint64("index_version", snap.Version).
		Msg("recommendation complete")
	return results, true
}

// RecommendByID returns up to TopN rows most similar to the row holding
// movieID. It returns ErrNotReady before the first build and ErrUnknownMovie
// when the ID is not in the snapshot.
func (e *Engine) RecommendByID(ctx context.Context, movieID int64) ([]Result, error) {
	e.requestCount.Add(1)

	snap := e.snapshot.Load()
	if snap == nil {
		e.notReadyCount.Add(1)
		metrics.RecommendationsTotal.WithLabelValues("not_ready").Inc()
		return nil, ErrNotReady
	}

	results, err := snap.RecommendByID(movieID, e.config.TopN)
	if err != nil {
		e.unknownIDs.Add(1)
		metrics.RecommendationsTotal.WithLabelValues("unknown_movie").Inc()
		logging.Ctx(ctx).Debug().Int64("movie_id", movieID).Msg("unknown movie id")
		return nil, err
	}

	metrics.RecommendationsTotal.WithLabelValues("served").Inc()
	logging.Ctx(ctx).Debug().
		Int64("movie_id", movieID).
		Int("returned", len(results)).
		Uint64("index_version", snap.Version).
		Msg("recommendation complete")
	return results, nil
}

// Titles returns every catalog title in row order, or nil before the first build.
func (e *Engine) Titles() []string {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil
	}
	return snap.Titles()
}

// Status returns the current build status.
func (e *Engine) Status() BuildStatus {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.status
}

// Stats returns request and build counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:      e.requestCount.Load(),
		UnknownTitles: e.unknownCount.Load(),
		UnknownMovies: e.unknownIDs.Load(),
		NotReady:      e.notReadyCount.Load(),
		Builds:        e.buildCount.Load(),
		FailedBuilds:  e.failedBuilds.Load(),
	}
}
