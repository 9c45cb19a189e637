package mcpserver

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kindledhq/kindled/internal/models"
)

// CreateRequest carries create_note tool arguments through the same
// constraints the HTTP boundary enforces.
type CreateRequest struct {
	Title    string
	Content  string
	Type     string
	EditCode string
}

// Validate enforces the field constraints.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, 2000)),
		validation.Field(&r.Type, validation.In(string(models.TypeGeneral), string(models.TypePrayerRequest))),
		validation.Field(&r.EditCode, validation.Required, validation.RuneLength(6, 64)),
	)
}

// NoteType returns the requested type, defaulting to general.
func (r CreateRequest) NoteType() models.NoteType {
	if r.Type == "" {
		return models.TypeGeneral
	}
	return models.NoteType(r.Type)
}
