// Package query implements the listing query engine: parameter
// normalization, capability-aware planning, and plan execution with a
// single bounded fallback retry.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kindledhq/kindled/internal/apperr"
	"github.com/kindledhq/kindled/internal/models"
)

// SortField is a whitelisted column notes can be ordered by.
type SortField string

// Sort fields.
const (
	SortCreatedAt SortField = "created_at"
	SortTitle     SortField = "title"
)

// SortOrder is the sort direction.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Spec is the typed, validated form of a listing request. It is
// built fresh per request and owns no resources.
type Spec struct {
	Text      string          // empty = no text filter
	Type      models.NoteType // empty = no type filter
	Limit     int
	Skip      int
	SortField SortField
	SortOrder SortOrder
	DateFrom  *time.Time
	DateTo    *time.Time
}

// DefaultSpec returns a Spec with all defaults applied and no filters.
func DefaultSpec() *Spec {
	return &Spec{
		Limit:     DefaultLimit,
		SortField: SortCreatedAt,
		SortOrder: SortDesc,
	}
}

// Normalize parses and validates raw query parameters into a Spec.
//
// Malformed values fail with a ParamError naming the parameter.
// Out-of-range limit and skip values are clamped, not rejected,
// favouring lenient client usability for pagination bounds.
func Normalize(params url.Values) (*Spec, error) {
	spec := DefaultSpec()

	spec.Text = strings.TrimSpace(params.Get("q"))

	if raw := params.Get("type"); raw != "" {
		t, err := models.ParseNoteType(raw)
		if err != nil {
			return nil, apperr.Invalid("type", apperr.ErrInvalidFilterValue)
		}
		spec.Type = t
	}

	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Invalid("limit", apperr.ErrInvalidPagination)
		}
		spec.Limit = clamp(n, 1, MaxLimit)
	}

	if raw := params.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Invalid("skip", apperr.ErrInvalidPagination)
		}
		if n < 0 {
			n = 0
		}
		spec.Skip = n
	}

	if raw := params.Get("sort_by"); raw != "" {
		switch SortField(raw) {
		case SortCreatedAt, SortTitle:
			spec.SortField = SortField(raw)
		default:
			return nil, apperr.Invalid("sort_by", apperr.ErrInvalidSortField)
		}
	}

	if raw := params.Get("sort_order"); raw != "" {
		switch SortOrder(raw) {
		case SortAsc, SortDesc:
			spec.SortOrder = SortOrder(raw)
		default:
			return nil, apperr.Invalid("sort_order", apperr.ErrInvalidSortOrder)
		}
	}

	var err error
	if spec.DateFrom, err = parseDate(params.Get("date_from")); err != nil {
		return nil, apperr.Invalid("date_from", apperr.ErrInvalidDateFormat)
	}
	if spec.DateTo, err = parseDate(params.Get("date_to")); err != nil {
		return nil, apperr.Invalid("date_to", apperr.ErrInvalidDateFormat)
	}

	return spec, nil
}

// parseDate accepts RFC 3339 datetimes or bare dates. An empty value
// means absent.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.ErrInvalidDateFormat
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
