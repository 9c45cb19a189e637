package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kindledhq/kindled/internal/apperr"
	"github.com/kindledhq/kindled/internal/models"
)

// Store is the slice of the document store the engine needs.
type Store interface {
	FindNotes(ctx context.Context, p *Plan) ([]models.Note, error)
	CountNotes(ctx context.Context, p *Plan) (int, error)
}

// Meta carries pagination metadata for a listing response.
type Meta struct {
	TotalCount    int `json:"total_count"`
	Limit         int `json:"limit"`
	Skip          int `json:"skip"`
	ReturnedCount int `json:"returned_count"`
}

// Envelope is the normalized listing result.
type Envelope struct {
	Meta Meta          `json:"meta"`
	Data []models.Note `json:"data"`
}

// Engine plans and executes listing queries against the store,
// consulting the shared capability handle to pick between full-text
// and fallback text matching.
type Engine struct {
	store  Store
	cap    *Capability
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(store Store, cap *Capability, logger *slog.Logger) *Engine {
	return &Engine{store: store, cap: cap, logger: logger}
}

// Capability exposes the engine's capability handle.
func (e *Engine) Capability() *Capability {
	return e.cap
}

// List executes spec and assembles the result envelope.
//
// When a full-text plan fails at execution time the capability is
// downgraded, the plan is rebuilt in fallback mode, and the query is
// retried exactly once. A failure of the fallback plan surfaces as
// ErrSearchExecution. Cancellations and timeouts say nothing about
// the text index: they surface as-is without touching the capability.
func (e *Engine) List(ctx context.Context, spec *Spec) (*Envelope, error) {
	mode := ModeFallback
	if spec.Text != "" && e.cap.Available() {
		mode = ModeFullText
	}

	env, err := e.run(ctx, BuildPlan(spec, mode), spec)
	if err != nil && interrupted(err) {
		return nil, err
	}
	if err != nil && mode == ModeFullText {
		e.logger.Warn("full-text query failed, retrying in fallback mode",
			slog.String("error", err.Error()))
		e.cap.MarkUnavailable()
		env, err = e.run(ctx, BuildPlan(spec, ModeFallback), spec)
		if err != nil && interrupted(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, fmt.Errorf("query: %w: %s", apperr.ErrSearchExecution, err)
	}
	return env, nil
}

// interrupted reports whether err stems from the request being
// cancelled or timing out rather than from query execution.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// run fetches the page and, independently, the total count. The two
// reads are separate round-trips; under concurrent writes the count
// and the page may reflect slightly different snapshots, which is an
// accepted trade-off.
func (e *Engine) run(ctx context.Context, plan *Plan, spec *Spec) (*Envelope, error) {
	page, err := e.store.FindNotes(ctx, plan)
	if err != nil {
		return nil, err
	}
	total, err := e.store.CountNotes(ctx, plan)
	if err != nil {
		return nil, err
	}
	if page == nil {
		page = []models.Note{}
	}
	return &Envelope{
		Meta: Meta{
			TotalCount:    total,
			Limit:         spec.Limit,
			Skip:          spec.Skip,
			ReturnedCount: len(page),
		},
		Data: page,
	}, nil
}
