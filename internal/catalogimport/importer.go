// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package catalogimport

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/cinephile/internal/config"
	"github.com/tomtom215/cinephile/internal/database"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
)

// Store is the subset of the catalog store the importer needs.
type Store interface {
	Conn() *sql.DB
	AttachSQLite(ctx context.Context, path, alias string) error
	DetachSQLite(ctx context.Context, alias string) error
	ReplaceCatalogFromSelect(ctx context.Context, selectSQL string, args ...any) (int64, error)
	CountMovies(ctx context.Context) (int, error)
}

// sourceAlias is the schema name the SQLite file is attached under.
const sourceAlias = "catalog_src"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Importer replaces the catalog from a configured source file.
type Importer struct {
	cfg   *config.CatalogConfig
	store Store

	mu      sync.Mutex
	running bool
}

// NewImporter creates a new catalog importer.
func NewImporter(cfg *config.CatalogConfig, store Store) *Importer {
	return &Importer{cfg: cfg, store: store}
}

// Configured reports whether an import path is set.
func (i *Importer) Configured() bool {
	return i.cfg != nil && i.cfg.ImportPath != ""
}

// ImportIfEmpty imports only when the catalog has no rows and import_on_empty
// is set. imported reports whether an import ran.
func (i *Importer) ImportIfEmpty(ctx context.Context) (stats *ImportStats, imported bool, err error) {
	if !i.Configured() || !i.cfg.ImportOnEmpty {
		return nil, false, nil
	}

	n, err := i.store.CountMovies(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("count catalog: %w", err)
	}
	if n > 0 {
		logging.Debug().Int("movies", n).Msg("Catalog not empty, skipping import")
		return nil, false, nil
	}

	stats, err = i.Import(ctx)
	if err != nil {
		return stats, false, err
	}
	return stats, true, nil
}

// Import replaces the catalog with the configured source.
func (i *Importer) Import(ctx context.Context) (*ImportStats, error) {
	if !i.Configured() {
		return nil, ErrNoSource
	}

	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	i.running = true
	i.mu.Unlock()
	defer func() {
		i.mu.Lock()
		i.running = false
		i.mu.Unlock()
	}()

	format, err := i.cfg.ResolvedFormat()
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{
		Format:    format,
		Source:    i.cfg.ImportPath,
		StartTime: time.Now(),
	}

	logging.Info().Str("format", format).Str("source", stats.Source).Msg("Starting catalog import")

	var source string
	switch format {
	case FormatCSV:
		source = fmt.Sprintf("read_csv_auto('%s', header = true)", database.QuoteLiteral(i.cfg.ImportPath))
	case FormatSQLite:
		if !tableNamePattern.MatchString(i.cfg.ImportTable) {
			return stats, fmt.Errorf("invalid sqlite table name %q", i.cfg.ImportTable)
		}
		if err := i.store.AttachSQLite(ctx, i.cfg.ImportPath, sourceAlias); err != nil {
			return stats, fmt.Errorf("open sqlite source: %w", err)
		}
		defer func() {
			if err := i.store.DetachSQLite(context.Background(), sourceAlias); err != nil {
				logging.Warn().Err(err).Msg("Error detaching SQLite source")
			}
		}()
		source = sourceAlias + "." + quoteIdent(i.cfg.ImportTable)
	}

	columns, err := describeColumns(ctx, i.store.Conn(), source)
	if err != nil {
		return stats, err
	}

	selectSQL, err := buildSelect(source, columns, stats)
	if err != nil {
		return stats, err
	}

	rows, err := i.store.ReplaceCatalogFromSelect(ctx, selectSQL)
	stats.EndTime = time.Now()
	if err != nil {
		return stats, fmt.Errorf("replace catalog: %w", err)
	}
	stats.Rows = rows
	metrics.CatalogImportRows.WithLabelValues(format).Add(float64(rows))

	logging.Info().
		Str("format", format).
		Int64("rows", rows).
		Bool("has_movie_id", stats.HasMovieID).
		Bool("has_ratings", stats.HasRatings).
		Dur("duration", stats.Duration()).
		Msg("Catalog import completed")

	return stats, nil
}

// describeColumns returns the source's column names keyed by lowercase name.
func describeColumns(ctx context.Context, conn *sql.DB, source string) (map[string]string, error) {
	rows, err := conn.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, fmt.Errorf("describe source: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("describe source: %w", err)
	}

	columns := make(map[string]string)
	for rows.Next() {
		dest := make([]any, len(colTypes))
		var name sql.NullString
		dest[0] = &name
		for k := 1; k < len(dest); k++ {
			dest[k] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan column description: %w", err)
		}
		if name.Valid {
			columns[strings.ToLower(name.String)] = name.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe source: %w", err)
	}
	return columns, nil
}

// buildSelect produces a SELECT yielding (movie_id, title, tags, ratings).
func buildSelect(source string, columns map[string]string, stats *ImportStats) (string, error) {
	for _, required := range []string{"title", "tags"} {
		if _, ok := columns[required]; !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	movieID := "CAST(NULL AS BIGINT)"
	if name, ok := columns["movie_id"]; ok {
		movieID = "TRY_CAST(" + quoteIdent(name) + " AS BIGINT)"
		stats.HasMovieID = true
	}

	ratings := "'[]'"
	if name, ok := columns["ratings"]; ok {
		ratings = "COALESCE(NULLIF(TRIM(CAST(" + quoteIdent(name) + " AS VARCHAR)), ''), '[]')"
		stats.HasRatings = true
	}

	return fmt.Sprintf("SELECT %s, COALESCE(CAST(%s AS VARCHAR), ''), COALESCE(CAST(%s AS VARCHAR), ''), %s FROM %s",
		movieID, quoteIdent(columns["title"]), quoteIdent(columns["tags"]), ratings, source), nil
}

// quoteIdent double-quotes a SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
