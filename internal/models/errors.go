package models

import "errors"

// Storage level errors returned by repositories.
// Services translate them into apperrors kinds.
var (
	// ErrNotFound is returned when a lookup or delete matched no rows
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEntry is returned when an insert violates a unique constraint
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrMissingReference is returned when an insert references a row that does not exist
	ErrMissingReference = errors.New("referenced record does not exist")
)
