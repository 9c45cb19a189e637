// Package noteservice coordinates store, slug, and query-engine
// operations behind the HTTP and MCP surfaces.
package noteservice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/kindledhq/kindled/internal/apperr"
	"github.com/kindledhq/kindled/internal/editcode"
	"github.com/kindledhq/kindled/internal/models"
	"github.com/kindledhq/kindled/internal/query"
	"github.com/kindledhq/kindled/internal/slug"
	"github.com/kindledhq/kindled/internal/store"
)

// Service exposes the note operations.
type Service struct {
	store  store.DocumentStore
	engine *query.Engine
	slugs  *slug.Generator
}

// NewService creates a note service.
func NewService(st store.DocumentStore, engine *query.Engine) *Service {
	return &Service{
		store:  st,
		engine: engine,
		slugs:  slug.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateNote generates a unique name, hashes the edit code, and
// persists the note. Input constraints are enforced at the API
// boundary; the service assumes a well-formed request.
func (s *Service) CreateNote(ctx context.Context, title, content string, typ models.NoteType, code string) (*models.Note, error) {
	name, err := s.slugs.Generate(ctx, s.store)
	if err != nil {
		return nil, err
	}
	n, err := s.store.InsertNote(ctx, models.Note{
		UniqueName: name,
		Title:      title,
		Content:    content,
		Type:       typ,
		EditCode:   editcode.Hash(code),
	})
	if err != nil {
		return nil, fmt.Errorf("noteservice: create: %w", err)
	}
	return &n, nil
}

// GetNote fetches a note by its unique name.
func (s *Service) GetNote(ctx context.Context, uniqueName string) (*models.Note, error) {
	return s.store.GetNote(ctx, uniqueName)
}

// UpdateNote replaces the title and content of a note when the edit
// code matches. Type and creation time are immutable.
func (s *Service) UpdateNote(ctx context.Context, uniqueName, code, title, content string) (*models.Note, error) {
	n, err := s.store.GetNote(ctx, uniqueName)
	if err != nil {
		return nil, err
	}
	if !editcode.Match(code, n.EditCode) {
		return nil, apperr.ErrBadEditCode
	}
	if err := s.store.UpdateNote(ctx, n.ID, title, content); err != nil {
		return nil, fmt.Errorf("noteservice: update: %w", err)
	}
	return s.store.GetNote(ctx, uniqueName)
}

// DeleteNote removes a note when the edit code matches.
func (s *Service) DeleteNote(ctx context.Context, uniqueName, code string) error {
	n, err := s.store.GetNote(ctx, uniqueName)
	if err != nil {
		return err
	}
	if !editcode.Match(code, n.EditCode) {
		return apperr.ErrBadEditCode
	}
	if err := s.store.DeleteNote(ctx, n.ID); err != nil {
		return fmt.Errorf("noteservice: delete: %w", err)
	}
	return nil
}

// ListNotes delegates to the query engine.
func (s *Service) ListNotes(ctx context.Context, spec *query.Spec) (*query.Envelope, error) {
	return s.engine.List(ctx, spec)
}
