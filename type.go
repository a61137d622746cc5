package fieldkit

import (
	"context"

	"github.com/dmitrymomot/fieldkit/markup"
)

// Capability is static metadata a field type exposes about how consumers
// outside this package may use fields of that type.
type Capability string

const (
	// CapSearchable marks types whose values can feed keyword search.
	CapSearchable Capability = "searchable"
	// CapFilterable marks types usable as listing filters.
	CapFilterable Capability = "filterable"
	// CapSortable marks types usable as sort keys.
	CapSortable Capability = "sortable"
	// CapRepeater marks types that hold multiple values.
	CapRepeater Capability = "repeater"
)

// Type is the strategy contract one kind of field data implements. A Type is
// stateless and shared across every field of that kind; all per-field
// configuration arrives through the Definition argument.
//
// Value shapes are type-dependent: string for text-like kinds, float64 for
// numeric kinds, bool for checkbox, []string for multiselect, []int64 for
// gallery. Sanitize never fails: malformed input degrades to a safe value.
// Validate returns nil when the value passes.
type Type interface {
	// Name is the stable key the registry resolves this type by.
	Name() string

	// Supports reports whether the type exposes the given capability.
	Supports(c Capability) bool

	// DefaultValue is the value used when no input and no stored value exist.
	DefaultValue() any

	// Render builds a structured, self-contained view-model of the input
	// control for the field, pre-filled with the current value. It is
	// side-effect-free and depends only on its arguments.
	Render(def Definition, value any) *markup.Control

	// Sanitize normalizes raw input without judging validity. It is
	// idempotent and never fails; malformed input degrades to a safe value.
	Sanitize(ctx context.Context, raw any, def Definition) any

	// Validate judges a sanitized value against the definition's rules.
	// A nil result means the value passed.
	Validate(ctx context.Context, value any, def Definition) Errors

	// DisplayValue produces the human-readable, presentation-only form of a
	// value (option labels, formatted currency, gallery markup).
	DisplayValue(value any, def Definition) string

	// StorageValue flattens a runtime value to a single scalar suitable for
	// column storage. List values become JSON array strings.
	StorageValue(value any) any

	// RuntimeValue is the inverse of StorageValue. It tolerates
	// already-expanded input and malformed stored content, degrading to the
	// type's empty value rather than failing.
	RuntimeValue(stored any) any
}
