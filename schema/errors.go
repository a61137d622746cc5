package schema

import "errors"

var (
	// ErrParse is returned when the document cannot be decoded at all.
	ErrParse = errors.New("failed to parse schema document")

	// ErrNoFields is returned when the document declares no fields.
	ErrNoFields = errors.New("schema document declares no fields")

	// ErrInvalidField is returned when a declared field misses its name or type.
	ErrInvalidField = errors.New("invalid field declaration")
)
