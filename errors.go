package fieldkit

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes attached to validation failures. The strings are stable and
// safe to match on from calling code.
const (
	CodeRequired         = "required"
	CodeUnknownField     = "unknown_field"
	CodeUnknownFieldType = "unknown_field_type"
	CodeNotNumeric       = "not_numeric"
	CodeMinLength        = "min_length"
	CodeMaxLength        = "max_length"
	CodeMinValue         = "min_value"
	CodeMaxValue         = "max_value"
	CodeNegativeValue    = "negative_value"
	CodeInvalidEmail     = "invalid_email"
	CodeInvalidURL       = "invalid_url"
	CodeInvalidPhone     = "invalid_phone"
	CodeInvalidOption    = "invalid_option"
	CodeInvalid          = "invalid"
	CodeMaxImages        = "max_images_exceeded"
	CodeBadAttachment    = "invalid_attachment"
	CodeNotAnImage       = "not_an_image"
	CodeBadImageType     = "invalid_image_type"
	CodeCallback         = "callback"
)

// Error is a single validation failure for one field.
type Error struct {
	Field   string
	Code    string
	Message string
}

// Errors is an ordered collection of validation failures, keyed by field
// name. A nil or empty Errors means validation passed. It implements the
// error interface so it can travel through error returns unchanged.
type Errors []Error

// Error implements the error interface.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a failure for the named field.
func (e *Errors) Add(field, code, message string) {
	*e = append(*e, Error{Field: field, Code: code, Message: message})
}

// Merge appends every entry of other, preserving order.
func (e *Errors) Merge(other Errors) {
	*e = append(*e, other...)
}

// Has reports whether the named field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether the named field failed with the given code.
func (e Errors) HasCode(field, code string) bool {
	for _, err := range e {
		if err.Field == field && err.Code == code {
			return true
		}
	}
	return false
}

// Messages returns the failure messages for the named field in order.
func (e Errors) Messages(field string) []string {
	var messages []string
	for _, err := range e {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names that failed, in first-failure order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range e {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// ByField flattens the collection into a field → messages map, the shape most
// form renderers and JSON APIs want.
func (e Errors) ByField() map[string][]string {
	if len(e) == 0 {
		return nil
	}

	out := make(map[string][]string)
	for _, err := range e {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// IsEmpty reports whether the collection holds no failures.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// AsErrors extracts an Errors collection from an error using errors.As.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}

	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
