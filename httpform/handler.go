package httpform

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldkit"
)

// handlerConfig collects the Handler options.
type handlerConfig struct {
	mode      fieldkit.Mode
	fieldOpts []fieldkit.FieldsOption
	onAccept  func(r *http.Request, values map[string]any) error
}

// HandlerOption configures a submission handler.
type HandlerOption func(*handlerConfig)

// WithMode tags requests handled by this endpoint with a validation mode.
func WithMode(mode fieldkit.Mode) HandlerOption {
	return func(c *handlerConfig) {
		c.mode = mode
	}
}

// WithFieldsOptions forwards filtering options (Only, Exclude, FailUnknown)
// to the bulk validation pass.
func WithFieldsOptions(opts ...fieldkit.FieldsOption) HandlerOption {
	return func(c *handlerConfig) {
		c.fieldOpts = opts
	}
}

// WithOnAccept runs after a submission validates; a non-nil error turns the
// response into a 500. Typical use is handing the sanitized values to
// storage.
func WithOnAccept(fn func(r *http.Request, values map[string]any) error) HandlerOption {
	return func(c *handlerConfig) {
		c.onAccept = fn
	}
}

// Handler builds an http.HandlerFunc that binds the request body, runs
// ProcessFields and responds with a JSON envelope: 200 with the sanitized
// values on success, 422 with per-field details on validation failure,
// 400/415 on malformed bodies.
func Handler(v *fieldkit.Validator, opts ...HandlerOption) http.HandlerFunc {
	cfg := handlerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		values, err := Values(r)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrMissingContentType) || errors.Is(err, ErrUnsupportedMediaType) {
				status = http.StatusUnsupportedMediaType
			}
			writeError(w, status, "invalid_request", err.Error())
			return
		}

		ctx := r.Context()
		if cfg.mode != "" {
			ctx = fieldkit.WithMode(ctx, cfg.mode)
		}

		result := v.ProcessFields(ctx, values, cfg.fieldOpts...)
		if !result.Valid {
			writeJSON(w, http.StatusUnprocessableEntity, Envelope{
				Code:   "validation_error",
				Values: result.Values,
				Error: &ErrorDetail{
					Code:    "validation_error",
					Details: result.Errors.ByField(),
				},
			})
			return
		}

		if cfg.onAccept != nil {
			if err := cfg.onAccept(r, result.Values); err != nil {
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
				return
			}
		}

		writeJSON(w, http.StatusOK, Envelope{Code: "ok", Values: result.Values})
	}
}

// Mount attaches a submission handler to a chi router at the given pattern.
func Mount(r chi.Router, pattern string, v *fieldkit.Validator, opts ...HandlerOption) {
	r.Post(pattern, Handler(v, opts...))
}
