package fieldkit

import (
	"context"
	"io"
	"log/slog"
	"slices"
)

// Validator orchestrates sanitization and validation across registered
// fields. It holds no per-request state: every operation takes the raw values
// and a context, resolves each field's definition and type through the
// registry, and aggregates per-field failures into one Errors collection.
type Validator struct {
	registry *Registry
	mode     Mode
	log      *slog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithDefaultMode sets the mode injected into contexts that carry none.
func WithDefaultMode(mode Mode) ValidatorOption {
	return func(v *Validator) {
		if mode != "" {
			v.mode = mode
		}
	}
}

// WithLogger sets the logger used for diagnostic output. Nil is ignored.
func WithLogger(log *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// NewValidator creates a Validator bound to the given registry.
func NewValidator(registry *Registry, opts ...ValidatorOption) *Validator {
	v := &Validator{
		registry: registry,
		mode:     ModeForm,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Registry returns the registry this validator resolves fields through.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// ensureMode injects the validator's default mode when the caller's context
// carries none, so field types always see a mode tag.
func (v *Validator) ensureMode(ctx context.Context) context.Context {
	if _, ok := ModeFrom(ctx); ok {
		return ctx
	}
	return WithMode(ctx, v.mode)
}

// resolve looks up a field's definition and type. The returned Errors is
// non-nil when either lookup misses; both conditions are validation errors,
// never panics, so callers need no defensive unwinding.
func (v *Validator) resolve(name string) (Definition, Type, Errors) {
	def, ok := v.registry.Definition(name)
	if !ok {
		v.log.Debug("field not registered", slog.String("field", name))

		var errs Errors
		errs.Add(name, CodeUnknownField, "field is not registered")
		return Definition{}, nil, errs
	}

	t, ok := v.registry.Type(def.Type)
	if !ok {
		v.log.Debug("unknown field type",
			slog.String("field", name), slog.String("type", def.Type))

		var errs Errors
		errs.Add(name, CodeUnknownFieldType, "unknown field type: "+def.Type)
		return Definition{}, nil, errs
	}

	return def, t, nil
}

// ValidateField sanitizes and validates a single raw value. A nil result
// means the value passed. Unregistered names and unregistered types fail
// closed with unknown_field / unknown_field_type.
func (v *Validator) ValidateField(ctx context.Context, name string, raw any) Errors {
	def, t, errs := v.resolve(name)
	if errs != nil {
		return errs
	}

	ctx = v.ensureMode(ctx)
	return t.Validate(ctx, t.Sanitize(ctx, raw, def), def)
}

// ValidateFieldValue validates a value that has already been sanitized,
// skipping the sanitize step.
func (v *Validator) ValidateFieldValue(ctx context.Context, name string, value any) Errors {
	def, t, errs := v.resolve(name)
	if errs != nil {
		return errs
	}

	return t.Validate(v.ensureMode(ctx), value, def)
}

// SanitizeField sanitizes a single raw value. An unregistered name returns
// the raw value unchanged: sanitization is a convenience, not a security
// boundary, and callers are expected to whitelist accepted keys themselves.
func (v *Validator) SanitizeField(ctx context.Context, name string, raw any) any {
	def, ok := v.registry.Definition(name)
	if !ok {
		v.log.Debug("sanitize skipped, field not registered", slog.String("field", name))
		return raw
	}

	t, ok := v.registry.Type(def.Type)
	if !ok {
		v.log.Debug("sanitize skipped, unknown field type",
			slog.String("field", name), slog.String("type", def.Type))
		return raw
	}

	return t.Sanitize(v.ensureMode(ctx), raw, def)
}

// fieldFilter is the resolved form of the Only/Exclude/FailUnknown options.
type fieldFilter struct {
	only        map[string]bool
	exclude     map[string]bool
	failUnknown bool
}

// FieldsOption scopes a bulk operation to a subset of the submitted fields.
type FieldsOption func(*fieldFilter)

// Only restricts the operation to the named fields.
func Only(names ...string) FieldsOption {
	return func(f *fieldFilter) {
		f.only = make(map[string]bool, len(names))
		for _, name := range names {
			f.only[name] = true
		}
	}
}

// Exclude removes the named fields from the operation.
func Exclude(names ...string) FieldsOption {
	return func(f *fieldFilter) {
		if f.exclude == nil {
			f.exclude = make(map[string]bool, len(names))
		}
		for _, name := range names {
			f.exclude[name] = true
		}
	}
}

// FailUnknown makes bulk validation report unregistered keys as
// unknown_field errors instead of skipping them.
func FailUnknown() FieldsOption {
	return func(f *fieldFilter) {
		f.failUnknown = true
	}
}

func newFieldFilter(opts []FieldsOption) fieldFilter {
	var f fieldFilter
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f fieldFilter) includes(name string) bool {
	if f.only != nil && !f.only[name] {
		return false
	}
	return !f.exclude[name]
}

// sortedKeys returns the map keys in lexical order so bulk operations visit
// fields deterministically.
func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ValidateFields sanitizes and validates a map of raw values, aggregating
// every field's failures into one collection. Every field is evaluated; there
// is no early abort, so a form can display all problems at once. Unregistered
// keys are skipped unless FailUnknown is given.
func (v *Validator) ValidateFields(ctx context.Context, values map[string]any, opts ...FieldsOption) Errors {
	filter := newFieldFilter(opts)
	ctx = v.ensureMode(ctx)

	var errs Errors
	for _, name := range sortedKeys(values) {
		if !filter.includes(name) {
			continue
		}

		if _, ok := v.registry.Definition(name); !ok {
			if filter.failUnknown {
				errs.Add(name, CodeUnknownField, "field is not registered")
			}
			continue
		}

		errs.Merge(v.ValidateField(ctx, name, values[name]))
	}

	return errs
}

// SanitizeFields sanitizes a map of raw values, applying the same filtering
// options as ValidateFields. It is a pure mapping and never fails;
// unregistered keys pass through unchanged.
func (v *Validator) SanitizeFields(ctx context.Context, values map[string]any, opts ...FieldsOption) map[string]any {
	filter := newFieldFilter(opts)
	ctx = v.ensureMode(ctx)

	out := make(map[string]any, len(values))
	for name, raw := range values {
		if !filter.includes(name) {
			continue
		}
		out[name] = v.SanitizeField(ctx, name, raw)
	}

	return out
}

// Result is the outcome of ProcessFields. Values holds the sanitized output
// for every processed field regardless of validity, so a caller can redisplay
// the form with cleaned input even on failure.
type Result struct {
	Valid  bool
	Values map[string]any
	Errors Errors
}

// ProcessFields sanitizes then validates a map of raw values in one call.
func (v *Validator) ProcessFields(ctx context.Context, values map[string]any, opts ...FieldsOption) Result {
	ctx = v.ensureMode(ctx)

	sanitized := v.SanitizeFields(ctx, values, opts...)

	filter := newFieldFilter(opts)
	var errs Errors
	for _, name := range sortedKeys(sanitized) {
		if _, ok := v.registry.Definition(name); !ok {
			if filter.failUnknown {
				errs.Add(name, CodeUnknownField, "field is not registered")
			}
			continue
		}

		errs.Merge(v.ValidateFieldValue(ctx, name, sanitized[name]))
	}

	return Result{
		Valid:  errs.IsEmpty(),
		Values: sanitized,
		Errors: errs,
	}
}

// ValidateRequired is a cheap pre-check that only enforces presence of every
// registered required field, ignoring all other rules. Callers use it for an
// early rejection before running full validation.
func (v *Validator) ValidateRequired(ctx context.Context, values map[string]any) Errors {
	ctx = v.ensureMode(ctx)

	var errs Errors
	for _, def := range v.registry.Definitions() {
		if !def.Required {
			continue
		}

		raw, ok := values[def.Name]
		if ok {
			if t, found := v.registry.Type(def.Type); found {
				raw = t.Sanitize(ctx, raw, def)
			}
		}
		if !ok || IsEmpty(raw) {
			errs.Add(def.Name, CodeRequired, def.DisplayLabel()+" is required")
		}
	}

	return errs
}
