package fieldtype

import (
	"context"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Radio is a single-choice string field rendered as a radio group. It shares
// Select's validation; only the rendered control differs.
type Radio struct{}

// NewRadio creates the radio field type.
func NewRadio() Radio { return Radio{} }

func (Radio) Name() string { return "radio" }

func (Radio) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapFilterable
}

func (Radio) DefaultValue() any { return "" }

func (Radio) Render(def fieldkit.Definition, value any) *markup.Control {
	return &markup.Control{
		Kind:        markup.KindRadioGroup,
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
		Options:     controlOptions(def, []string{stringify(value)}),
	}
}

func (Radio) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return cleanString(raw)
}

func (Radio) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	return validateChoice(value, def)
}

func (Radio) DisplayValue(value any, def fieldkit.Definition) string {
	return optionDisplay(stringify(value), def)
}

func (Radio) StorageValue(value any) any {
	return stringify(value)
}

func (Radio) RuntimeValue(stored any) any {
	return stringify(stored)
}
