package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kindledhq/kindled/internal/models"
	"github.com/kindledhq/kindled/internal/query"
)

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	EditCode string `json:"edit_code"`
}

// Validate enforces the field constraints. Type may be omitted, in
// which case the note is created as a general remark.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, 2000)),
		validation.Field(&r.Type, validation.In(string(models.TypeGeneral), string(models.TypePrayerRequest))),
		validation.Field(&r.EditCode, validation.Required, validation.RuneLength(6, 64)),
	)
}

// NoteType returns the requested type, defaulting to general.
func (r CreateNoteRequest) NoteType() models.NoteType {
	if r.Type == "" {
		return models.TypeGeneral
	}
	return models.NoteType(r.Type)
}

// UpdateNoteRequest is the request body for editing a note. The edit
// code must match the one supplied at creation.
type UpdateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	EditCode string `json:"edit_code"`
}

// Validate enforces the field constraints.
func (r UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, 2000)),
		validation.Field(&r.EditCode, validation.Required, validation.RuneLength(6, 64)),
	)
}

// DeleteNoteRequest is the request body for deleting a note.
type DeleteNoteRequest struct {
	EditCode string `json:"edit_code"`
}

// Validate enforces the field constraints.
func (r DeleteNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EditCode, validation.Required, validation.RuneLength(6, 64)),
	)
}

// ListNotesResponse documents the listing envelope shape.
type ListNotesResponse = query.Envelope
