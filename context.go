package fieldkit

import "context"

// Mode tags a validation pass with the surface it serves. Field types may
// consult it to vary sanitization or validation behavior, e.g. allowing
// markup in admin submissions that public form submissions strip.
type Mode string

const (
	ModeForm  Mode = "form"
	ModeAdmin Mode = "admin"
	ModeAPI   Mode = "api"
)

type modeKey struct{}

// WithMode returns a context carrying the given validation mode.
func WithMode(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, modeKey{}, mode)
}

// ModeFrom extracts the validation mode from the context.
// The second return value is false when no mode has been set.
func ModeFrom(ctx context.Context) (Mode, bool) {
	mode, ok := ctx.Value(modeKey{}).(Mode)
	return mode, ok
}

// ModeOrDefault extracts the validation mode, falling back to ModeForm.
func ModeOrDefault(ctx context.Context) Mode {
	if mode, ok := ModeFrom(ctx); ok {
		return mode
	}
	return ModeForm
}
