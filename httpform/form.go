// Package httpform connects fieldkit to HTTP submission handling: it
// harvests raw name→value maps from form-encoded request bodies, runs them
// through a validator and renders the outcome as a JSON envelope with
// per-field error details.
package httpform

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Form binding errors.
var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing.
const maxMultipartMemory = 10 << 20

// Values harvests submitted fields from a form-encoded or multipart request
// body into the raw map the validator consumes. Multi-valued keys and keys
// with the conventional "[]" suffix become []string; everything else is a
// plain string.
func Values(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}

	values := make(map[string]any, len(r.PostForm))
	for key, raw := range r.PostForm {
		name := strings.TrimSuffix(key, "[]")
		if name == "" {
			continue
		}

		if len(raw) > 1 || strings.HasSuffix(key, "[]") {
			values[name] = append([]string(nil), raw...)
			continue
		}
		values[name] = raw[0]
	}

	return values, nil
}
