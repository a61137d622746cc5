package fieldtype

import (
	"context"
	"strings"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// MultiSelect is a multi-choice field holding an ordered []string of option
// values. It renders as a checkbox group and stores as a JSON array.
type MultiSelect struct{}

// NewMultiSelect creates the multiselect field type.
func NewMultiSelect() MultiSelect { return MultiSelect{} }

func (MultiSelect) Name() string { return "multiselect" }

func (MultiSelect) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapFilterable || c == fieldkit.CapRepeater
}

func (MultiSelect) DefaultValue() any { return []string(nil) }

func (MultiSelect) Render(def fieldkit.Definition, value any) *markup.Control {
	selected := decodeStringList(value)

	return &markup.Control{
		Kind:        markup.KindCheckboxGroup,
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Values:      selected,
		Required:    def.Required,
		Description: def.Description,
		Multiple:    true,
		Options:     controlOptions(def, selected),
	}
}

// Sanitize normalizes any accepted list shape to []string with each entry
// cleaned; empty entries are dropped.
func (MultiSelect) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	items := decodeStringList(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := cleanString(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string(nil)
	}
	return out
}

func (MultiSelect) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	values := decodeStringList(value)

	var errs fieldkit.Errors
	for _, v := range values {
		checkOption(&errs, def, v)
	}
	runCallback(&errs, def, values)
	return errs
}

// DisplayValue joins the selected option labels, e.g. "WiFi, Pool".
func (MultiSelect) DisplayValue(value any, def fieldkit.Definition) string {
	values := decodeStringList(value)
	labels := make([]string, 0, len(values))
	for _, v := range values {
		labels = append(labels, optionDisplay(v, def))
	}
	return strings.Join(labels, ", ")
}

func (MultiSelect) StorageValue(value any) any {
	values := decodeStringList(value)
	if values == nil {
		values = []string{}
	}
	return encodeJSONList(values)
}

func (MultiSelect) RuntimeValue(stored any) any {
	return decodeStringList(stored)
}
