// Package models defines the domain types for Kindled.
package models

import (
	"fmt"
	"time"
)

// NoteType classifies a note. The set is closed: a note is either a
// general remark or a prayer request, fixed at creation.
type NoteType string

// Note types.
const (
	TypeGeneral       NoteType = "general"
	TypePrayerRequest NoteType = "prayer_request"
)

// ParseNoteType validates a raw type value.
func ParseNoteType(s string) (NoteType, error) {
	switch NoteType(s) {
	case TypeGeneral, TypePrayerRequest:
		return NoteType(s), nil
	}
	return "", fmt.Errorf("unknown note type %q", s)
}

// Note represents a persisted note document.
//
// ID and CreatedAt are assigned by the store at insertion and never
// change afterwards. EditCode holds the SHA-256 hex digest of the
// caller-supplied edit code and is never serialized.
type Note struct {
	ID         string    `json:"id"`
	UniqueName string    `json:"unique_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Type       NoteType  `json:"type"`
	EditCode   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
