// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tomtom215/cinephile/internal/logging"
)

// extensionContext returns a context with timeout for extension operations
func extensionContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 30*time.Second)
}

// isExtensionInstalledLocally checks the DuckDB extension directory for name.
func isExtensionInstalledLocally(name string) bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	matches, err := filepath.Glob(filepath.Join(home, ".duckdb", "extensions", "*", "*", name+".duckdb_extension"))
	return err == nil && len(matches) > 0
}

// EnsureSQLiteScanner installs and loads the sqlite_scanner extension.
// INSTALL may fail offline when the extension is already present, so LOAD is
// tried next and FORCE INSTALL last.
func (db *DB) EnsureSQLiteScanner(ctx context.Context) error {
	db.extMu.Lock()
	defer db.extMu.Unlock()

	if db.sqliteAvailable {
		return nil
	}

	ctx, cancel := extensionContext(ctx)
	defer cancel()

	if isExtensionInstalledLocally("sqlite_scanner") {
		logging.Debug().Str("extension", "sqlite_scanner").Msg("Extension found locally, skipping download")
	} else if _, err := db.conn.ExecContext(ctx, "INSTALL sqlite_scanner;"); err != nil {
		if _, loadErr := db.conn.ExecContext(ctx, "LOAD sqlite_scanner;"); loadErr == nil {
			db.sqliteAvailable = true
			return nil
		}
		if _, forceErr := db.conn.ExecContext(ctx, "FORCE INSTALL sqlite_scanner;"); forceErr != nil {
			return fmt.Errorf("failed to install sqlite_scanner: install error: %w, force install error: %w", err, forceErr)
		}
	}

	if _, err := db.conn.ExecContext(ctx, "LOAD sqlite_scanner;"); err != nil {
		return fmt.Errorf("failed to load sqlite_scanner: %w", err)
	}

	db.sqliteAvailable = true
	logging.Info().Str("extension", "sqlite_scanner").Msg("Extension loaded")
	return nil
}

var aliasPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// AttachSQLite attaches the SQLite file at path read-only under alias.
func (db *DB) AttachSQLite(ctx context.Context, path, alias string) error {
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("invalid attach alias %q", alias)
	}
	if err := db.EnsureSQLiteScanner(ctx); err != nil {
		return err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	stmt := fmt.Sprintf("ATTACH '%s' AS %s (TYPE SQLITE, READ_ONLY)", QuoteLiteral(path), alias)
	if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("attach %s: %w", path, err)
	}
	return nil
}

// DetachSQLite detaches alias if it is attached.
func (db *DB) DetachSQLite(ctx context.Context, alias string) error {
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("invalid attach alias %q", alias)
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "DETACH DATABASE IF EXISTS "+alias); err != nil {
		return fmt.Errorf("detach %s: %w", alias, err)
	}
	return nil
}

// QuoteLiteral escapes s for use inside a single-quoted SQL string.
func QuoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
