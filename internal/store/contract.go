package store

import (
	"context"

	"github.com/kindledhq/kindled/internal/models"
	"github.com/kindledhq/kindled/internal/query"
)

// DocumentStore defines the interface for note persistence.
// Consumers should depend on this interface rather than the concrete
// *DB type to facilitate testing with mocks.
type DocumentStore interface {
	InsertNote(ctx context.Context, n models.Note) (models.Note, error)
	GetNote(ctx context.Context, uniqueName string) (*models.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) error
	DeleteNote(ctx context.Context, id string) error
	NamesWithPrefix(ctx context.Context, base string) ([]string, error)
	FindNotes(ctx context.Context, p *query.Plan) ([]models.Note, error)
	CountNotes(ctx context.Context, p *query.Plan) (int, error)
	EnsureTextIndex(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Verify *DB satisfies DocumentStore at compile time.
var _ DocumentStore = (*DB)(nil)
