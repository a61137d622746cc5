package fieldkit

// Option is a single enumerated choice for choice-based field types.
// Order is significant: it is the order options are rendered in.
type Option struct {
	Value string
	Label string
}

// Callback is an optional custom predicate attached to a Definition.
// Returning (true, nil) passes; (false, nil) fails with the generic invalid
// message; a non-nil error fails with the error's message verbatim.
type Callback func(value any) (bool, error)

// Definition is the declarative configuration of one field. It names the
// field, resolves to a registered Type by the Type key, and carries the
// constraints the type's Validate consults. Definitions are plain values;
// once registered they are treated as immutable.
type Definition struct {
	// Name uniquely identifies the field. Required, non-empty.
	Name string

	// Type is the key of the field type implementation. An unknown key is
	// accepted at registration time and fails closed at validation time.
	Type string

	// Label is the human-readable name used in error messages and rendered
	// labels. Falls back to Name when empty.
	Label string

	// Description is rendered as help text and referenced via
	// aria-describedby.
	Description string

	Required bool

	// Options enumerates the allowed values for choice-based types.
	Options []Option

	// Numeric bounds. Nil means unbounded.
	Min *float64
	Max *float64

	// String length bounds. Zero means unbounded.
	MinLength int
	MaxLength int

	// Pattern is an optional regular expression the sanitized value must
	// match. PatternMessage overrides the generic mismatch message.
	Pattern        string
	PatternMessage string

	// Callback is an optional custom predicate run after all built-in rules.
	Callback Callback

	// Number/currency configuration.
	AllowNegative bool
	// Precision is the number of decimal digits values are rounded to.
	// Nil means the type default (2 for currency).
	Precision        *int
	CurrencySymbol   string
	CurrencyPosition string // "before" (default) or "after"

	// Gallery configuration.
	MaxImages    int      // zero means unlimited
	AllowedTypes []string // allowed file extensions, e.g. "jpg", "png"
	Display      string   // "grid" (default) or "compact"

	// Textarea configuration.
	Rows int
}

// DisplayLabel returns the label, falling back to the field name.
func (d Definition) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// OptionValues returns the declared option values in order.
func (d Definition) OptionValues() []string {
	if len(d.Options) == 0 {
		return nil
	}

	values := make([]string, 0, len(d.Options))
	for _, opt := range d.Options {
		values = append(values, opt.Value)
	}
	return values
}

// OptionLabel resolves an option value to its label.
func (d Definition) OptionLabel(value string) (string, bool) {
	for _, opt := range d.Options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

// HasOption reports whether value is among the declared options.
func (d Definition) HasOption(value string) bool {
	_, ok := d.OptionLabel(value)
	return ok
}
