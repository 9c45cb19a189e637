package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kindledhq/kindled/internal/apperr"
	"github.com/kindledhq/kindled/internal/models"
	"github.com/kindledhq/kindled/internal/query"
)

const noteColumns = `id, unique_name, title, content, type, edit_code, created_at`

// InsertNote persists a new note, assigning its id and creation time.
// The FTS row is written best-effort when the index is available.
func (db *DB) InsertNote(ctx context.Context, n models.Note) (models.Note, error) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return models.Note{}, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(`
		INSERT INTO notes (id, unique_name, title, content, type, edit_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, n.ID, n.UniqueName, n.Title, n.Content, string(n.Type), n.EditCode, n.CreatedAt)
	if err != nil {
		return models.Note{}, fmt.Errorf("store: insert note: %w", err)
	}
	if db.fts.Load() {
		_, _ = tx.Exec(`INSERT INTO notes_fts (id, title, content) VALUES (?, ?, ?)`,
			n.ID, n.Title, n.Content)
	}
	if err := tx.Commit(); err != nil {
		return models.Note{}, fmt.Errorf("store: commit insert: %w", err)
	}
	return n, nil
}

// GetNote returns the note with the given unique name.
func (db *DB) GetNote(ctx context.Context, uniqueName string) (*models.Note, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE unique_name = ?`, uniqueName)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: get note: %w", err)
	}
	return n, nil
}

// UpdateNote replaces the title and content of the note with the given
// id. Type, creation time, and names never change.
func (db *DB) UpdateNote(ctx context.Context, id, title, content string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.Exec(`UPDATE notes SET title = ?, content = ? WHERE id = ?`, title, content, id)
	if err != nil {
		return fmt.Errorf("store: update note: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperr.ErrNotFound
	}
	if db.fts.Load() {
		_, _ = tx.Exec(`DELETE FROM notes_fts WHERE id = ?`, id)
		_, _ = tx.Exec(`INSERT INTO notes_fts (id, title, content) VALUES (?, ?, ?)`, id, title, content)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit update: %w", err)
	}
	return nil
}

// DeleteNote removes a note and its FTS row.
func (db *DB) DeleteNote(ctx context.Context, id string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if db.fts.Load() {
		_, _ = tx.Exec(`DELETE FROM notes_fts WHERE id = ?`, id)
	}
	res, err := tx.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperr.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit delete: %w", err)
	}
	return nil
}

// NamesWithPrefix returns every unique name starting with base,
// case-insensitively. Used by slug generation to avoid collisions.
func (db *DB) NamesWithPrefix(ctx context.Context, base string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT unique_name FROM notes WHERE unique_name LIKE ?`, base+"%")
	if err != nil {
		return nil, fmt.Errorf("store: names with prefix: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// FindNotes runs the plan's filter, sort, and pagination and returns
// the page of matching notes.
func (db *DB) FindNotes(ctx context.Context, p *query.Plan) ([]models.Note, error) {
	q := `SELECT ` + noteColumns + ` FROM notes`
	if p.Where != "" {
		q += ` WHERE ` + p.Where
	}
	q += ` ORDER BY ` + p.Order + ` LIMIT ? OFFSET ?`

	args := make([]any, 0, len(p.Args)+2)
	args = append(args, p.Args...)
	args = append(args, p.Limit, p.Skip)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("store: find notes: %w", err)
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan note: %w", err)
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// CountNotes counts all notes matching the plan's filter, ignoring
// its sort and pagination.
func (db *DB) CountNotes(ctx context.Context, p *query.Plan) (int, error) {
	q := `SELECT count(*) FROM notes`
	if p.Where != "" {
		q += ` WHERE ` + p.Where
	}
	var total int
	if err := db.conn.QueryRowContext(ctx, q, p.Args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("store: count notes: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var n models.Note
	var typ string
	if err := row.Scan(&n.ID, &n.UniqueName, &n.Title, &n.Content, &typ, &n.EditCode, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = models.NoteType(typ)
	return &n, nil
}
