// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks that the configuration is complete and consistent
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateIndex(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validatePosterCache(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production", "test":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, production or test, got %q", c.Server.Environment)
	}
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.ImportPath == "" {
		return nil
	}
	if _, err := c.Catalog.ResolvedFormat(); err != nil {
		return err
	}
	return nil
}

// ResolvedFormat returns the import format, inferring it from the file
// extension when ImportFormat is empty or "auto".
func (c CatalogConfig) ResolvedFormat() (string, error) {
	format := strings.ToLower(c.ImportFormat)
	if format == "" || format == "auto" {
		switch strings.ToLower(filepath.Ext(c.ImportPath)) {
		case ".csv":
			format = "csv"
		case ".db", ".sqlite", ".sqlite3":
			format = "sqlite"
		default:
			return "", fmt.Errorf("CATALOG_IMPORT_FORMAT is required: cannot infer format from %q", c.ImportPath)
		}
	}
	if format != "csv" && format != "sqlite" {
		return "", fmt.Errorf("CATALOG_IMPORT_FORMAT must be csv or sqlite, got %q", format)
	}
	if format == "sqlite" && c.ImportTable == "" {
		return "", fmt.Errorf("CATALOG_IMPORT_TABLE is required for sqlite imports")
	}
	return format, nil
}

func (c *Config) validateIndex() error {
	if c.Index.MaxFeatures < 1 {
		return fmt.Errorf("INDEX_MAX_FEATURES must be at least 1, got %d", c.Index.MaxFeatures)
	}
	if c.Index.TopN < 1 {
		return fmt.Errorf("INDEX_TOP_N must be at least 1, got %d", c.Index.TopN)
	}
	if c.Index.Workers < 0 {
		return fmt.Errorf("INDEX_WORKERS must be >= 0, got %d", c.Index.Workers)
	}
	if c.Index.BuildTimeout <= 0 {
		return fmt.Errorf("INDEX_BUILD_TIMEOUT must be positive, got %s", c.Index.BuildTimeout)
	}
	if c.Index.RefreshInterval < 0 {
		return fmt.Errorf("INDEX_REFRESH_INTERVAL must be >= 0, got %s", c.Index.RefreshInterval)
	}
	return nil
}

// validateTMDB only checks TMDB settings when poster lookups are enabled.
// A missing API key is allowed: the poster service then returns no posters.
func (c *Config) validateTMDB() error {
	if !c.TMDB.Enabled {
		return nil
	}
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateImageBaseURL(c.TMDB.ImageBaseURL); err != nil {
		return err
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got %s", c.TMDB.Timeout)
	}
	if c.TMDB.RequestsPerSecond <= 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must be positive, got %v", c.TMDB.RequestsPerSecond)
	}
	if c.TMDB.Burst < 1 {
		return fmt.Errorf("TMDB_BURST must be at least 1, got %d", c.TMDB.Burst)
	}
	if c.TMDB.MaxConcurrency < 1 {
		return fmt.Errorf("TMDB_MAX_CONCURRENCY must be at least 1, got %d", c.TMDB.MaxConcurrency)
	}
	return nil
}

func (c *Config) validatePosterCache() error {
	switch c.PosterCache.Backend {
	case "none":
		return nil
	case "memory":
		if c.PosterCache.Capacity < 1 {
			return fmt.Errorf("POSTER_CACHE_CAPACITY must be at least 1, got %d", c.PosterCache.Capacity)
		}
	case "redis":
		if c.PosterCache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when POSTER_CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("POSTER_CACHE_BACKEND must be memory, redis or none, got %q", c.PosterCache.Backend)
	}
	if c.PosterCache.TTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL must be positive, got %s", c.PosterCache.TTL)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL is invalid: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
