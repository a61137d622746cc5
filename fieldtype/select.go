package fieldtype

import (
	"context"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Select is a single-choice string field rendered as a dropdown. The value
// must be one of the definition's declared options.
type Select struct{}

// NewSelect creates the select field type.
func NewSelect() Select { return Select{} }

func (Select) Name() string { return "select" }

func (Select) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapFilterable || c == fieldkit.CapSortable
}

func (Select) DefaultValue() any { return "" }

func (Select) Render(def fieldkit.Definition, value any) *markup.Control {
	return &markup.Control{
		Kind:        markup.KindSelect,
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
		Options:     controlOptions(def, []string{stringify(value)}),
	}
}

func (Select) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return cleanString(raw)
}

func (Select) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	return validateChoice(value, def)
}

func (Select) DisplayValue(value any, def fieldkit.Definition) string {
	return optionDisplay(stringify(value), def)
}

func (Select) StorageValue(value any) any {
	return stringify(value)
}

func (Select) RuntimeValue(stored any) any {
	return stringify(stored)
}

// validateChoice is the shared rule chain for single-choice fields.
func validateChoice(value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	var errs fieldkit.Errors
	checkOption(&errs, def, stringify(value))
	runCallback(&errs, def, value)
	return errs
}

// controlOptions resolves the declared options against the selected values.
func controlOptions(def fieldkit.Definition, selected []string) []markup.ControlOption {
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}

	opts := make([]markup.ControlOption, 0, len(def.Options))
	for _, opt := range def.Options {
		opts = append(opts, markup.ControlOption{
			Value:    opt.Value,
			Label:    opt.Label,
			Selected: chosen[opt.Value],
		})
	}
	return opts
}

// optionDisplay maps an option value to its label, falling back to the raw
// value when the option is undeclared.
func optionDisplay(value string, def fieldkit.Definition) string {
	if label, ok := def.OptionLabel(value); ok {
		return label
	}
	return value
}
