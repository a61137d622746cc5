package config

import "errors"

var (
	// ErrParse is returned when environment variables cannot be parsed into
	// the target struct.
	ErrParse = errors.New("failed to parse environment into config")

	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
