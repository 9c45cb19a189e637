// Package store provides the SQLite-backed note document store with
// optional FTS5 full-text search.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kindledhq/kindled/internal/apperr"
)

const coreSchemaSQL = `
CREATE TABLE IF NOT EXISTS notes (
	id          TEXT PRIMARY KEY,
	unique_name TEXT NOT NULL UNIQUE,
	title       TEXT NOT NULL,
	content     TEXT NOT NULL,
	type        TEXT NOT NULL CHECK (type IN ('general', 'prayer_request')),
	edit_code   TEXT NOT NULL,
	created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at);
CREATE INDEX IF NOT EXISTS idx_notes_type ON notes(type);
`

// DB wraps a sql.DB with note store operations.
type DB struct {
	conn *sql.DB
	fts  atomic.Bool
}

// Open opens (or creates) the SQLite database and applies the core
// schema. The text index is not touched here; see EnsureTextIndex.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(coreSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply core schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// EnsureTextIndex creates the FTS5 virtual table over title and
// content and rebuilds it from the notes table. It fails when the
// driver was compiled without FTS5; callers treat that as a degraded
// capability, not a fatal error.
func (db *DB) EnsureTextIndex(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, `
		CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
			id UNINDEXED,
			title,
			content,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	if err != nil {
		return fmt.Errorf("store: create fts table: %w", err)
	}

	// Rebuild so the index agrees with the notes table even if a
	// previous run inserted rows without FTS available.
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin fts rebuild: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if _, err := tx.Exec(`DELETE FROM notes_fts`); err != nil {
		return fmt.Errorf("store: clear fts table: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO notes_fts (id, title, content) SELECT id, title, content FROM notes`); err != nil {
		return fmt.Errorf("store: rebuild fts table: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit fts rebuild: %w", err)
	}

	db.fts.Store(true)
	return nil
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("store: %w: %s", apperr.ErrStoreUnavailable, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
