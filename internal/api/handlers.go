package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kindledhq/kindled/internal/apperr"
	"github.com/kindledhq/kindled/internal/noteservice"
	"github.com/kindledhq/kindled/internal/query"
)

// Handler holds API route handlers.
type Handler struct {
	svc *noteservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *noteservice.Service) *Handler {
	return &Handler{svc: svc}
}

// ListNotes handles GET /api/notes, the searchable, filterable,
// paginated listing endpoint.
//
// Parameters: q, type, limit (default 20, max 100), skip (default 0),
// sort_by (created_at|title, default created_at), sort_order
// (asc|desc, default desc), date_from, date_to (RFC 3339).
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	spec, err := query.Normalize(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	env, err := h.svc.ListNotes(r.Context(), spec)
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, env)
}

// CreateNote handles POST /api/notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	note, err := h.svc.CreateNote(r.Context(), req.Title, req.Content, req.NoteType(), req.EditCode)
	if err != nil {
		slog.Error("create note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// GetNote handles GET /api/notes/{name}.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	note, err := h.svc.GetNote(r.Context(), name)
	if err != nil {
		h.writeError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// UpdateNote handles PUT /api/notes/{name}. The edit code must match
// the one supplied at creation.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	name := chi.URLParam(r, "name")
	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	note, err := h.svc.UpdateNote(r.Context(), name, req.EditCode, req.Title, req.Content)
	if err != nil {
		h.writeError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /api/notes/{name}.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req DeleteNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.DeleteNote(r.Context(), name, req.EditCode); err != nil {
		h.writeError(w, name, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to HTTP statuses.
func (h *Handler) writeError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrBadEditCode):
		writeJSON(w, http.StatusForbidden, errorBody("invalid edit code"))
	default:
		slog.Error("request failed", slog.String("name", name), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
