// Package api implements the Kindled REST API using chi.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/kindledhq/kindled/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// createPerMinute caps note creation per client IP; zero disables the
// limit (used by tests).
func NewRouter(svc *noteservice.Service, createPerMinute int) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	r.Get("/notes", h.ListNotes)
	if createPerMinute > 0 {
		r.With(httprate.LimitByIP(createPerMinute, time.Minute)).Post("/notes", h.CreateNote)
	} else {
		r.Post("/notes", h.CreateNote)
	}
	r.Get("/notes/{name}", h.GetNote)
	r.Put("/notes/{name}", h.UpdateNote)
	r.Delete("/notes/{name}", h.DeleteNote)

	return r
}
