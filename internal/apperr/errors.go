// Package apperr defines the error taxonomy shared across layers.
package apperr

import (
	"errors"
	"fmt"
)

// Caller-input errors. Resolved entirely at the parameter boundary;
// requests carrying one never reach the store.
var (
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrInvalidPagination  = errors.New("invalid pagination")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrInvalidDateFormat  = errors.New("invalid date format")
)

// Server-side errors.
var (
	ErrSearchExecution  = errors.New("search execution failed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// CRUD errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrBadEditCode = errors.New("invalid edit code")
)

// ParamError is a validation failure tied to a named query parameter.
// It wraps one of the caller-input sentinels above so callers can
// branch with errors.Is while still naming the offending parameter.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// Invalid wraps sentinel err as a ParamError for param.
func Invalid(param string, err error) error {
	return &ParamError{Param: param, Err: err}
}