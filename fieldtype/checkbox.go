package fieldtype

import (
	"context"
	"strings"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Checkbox is a boolean field. A required checkbox must be checked.
type Checkbox struct{}

// NewCheckbox creates the checkbox field type.
func NewCheckbox() Checkbox { return Checkbox{} }

func (Checkbox) Name() string { return "checkbox" }

func (Checkbox) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapFilterable
}

func (Checkbox) DefaultValue() any { return false }

func (Checkbox) Render(def fieldkit.Definition, value any) *markup.Control {
	current := ""
	if truthy(value) {
		current = "1"
	}

	return &markup.Control{
		Kind:        markup.KindCheckbox,
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       current,
		Required:    def.Required,
		Description: def.Description,
	}
}

func (Checkbox) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return truthy(raw)
}

func (Checkbox) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	var errs fieldkit.Errors
	runCallback(&errs, def, value)
	return errs
}

func (Checkbox) DisplayValue(value any, _ fieldkit.Definition) string {
	if truthy(value) {
		return "Yes"
	}
	return "No"
}

// StorageValue stores "1" for checked and the empty string for unchecked,
// matching how browsers submit (or omit) checkbox inputs.
func (Checkbox) StorageValue(value any) any {
	if truthy(value) {
		return "1"
	}
	return ""
}

func (Checkbox) RuntimeValue(stored any) any {
	return truthy(stored)
}

// truthy interprets the value shapes a checkbox submission arrives in.
func truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "on", "true", "yes":
			return true
		}
		return false
	case int, int64:
		f, _ := toFloat(v)
		return f != 0
	case float64, float32:
		f, _ := toFloat(v)
		return f != 0
	default:
		return false
	}
}
