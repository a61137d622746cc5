package fieldtype

import (
	"context"
	"strconv"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Number is a float64 field with optional min/max bounds and precision.
type Number struct{}

// NewNumber creates the number field type.
func NewNumber() Number { return Number{} }

func (Number) Name() string { return "number" }

func (Number) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapFilterable || c == fieldkit.CapSortable
}

func (Number) DefaultValue() any { return 0.0 }

func (Number) Render(def fieldkit.Definition, value any) *markup.Control {
	c := &markup.Control{
		Kind:        markup.KindInput,
		InputType:   "number",
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
	}
	if def.Min != nil || def.Max != nil {
		c.Attrs = make(map[string]string)
		if def.Min != nil {
			c.Attrs["min"] = formatFloat(*def.Min)
		}
		if def.Max != nil {
			c.Attrs["max"] = formatFloat(*def.Max)
		}
	}
	return c
}

// Sanitize coerces numeric input to float64, rounding to the definition's
// precision when one is set. Empty input stays empty so required checks see
// it; non-numeric input degrades to 0.0.
func (Number) Sanitize(_ context.Context, raw any, def fieldkit.Definition) any {
	return sanitizeNumeric(raw, def.Precision)
}

func (Number) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	var errs fieldkit.Errors
	v, ok := toFloat(value)
	if !ok {
		errs.Add(def.Name, fieldkit.CodeNotNumeric, def.DisplayLabel()+" must be a number")
		return errs
	}

	checkRange(&errs, def, v)
	runCallback(&errs, def, value)
	return errs
}

func (Number) DisplayValue(value any, _ fieldkit.Definition) string {
	if v, ok := toFloat(value); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return stringify(value)
}

func (Number) StorageValue(value any) any {
	if v, ok := toFloat(value); ok {
		return v
	}
	return 0.0
}

func (Number) RuntimeValue(stored any) any {
	if fieldkit.IsEmpty(stored) {
		return 0.0
	}
	if v, ok := toFloat(stored); ok {
		return v
	}
	return 0.0
}

// sanitizeNumeric is shared by the number and currency types.
func sanitizeNumeric(raw any, precision *int) any {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		s := cleanString(v)
		if s == "" {
			return ""
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0.0
		}
		return roundMaybe(f, precision)
	default:
		if f, ok := toFloat(raw); ok {
			return roundMaybe(f, precision)
		}
		return 0.0
	}
}

func roundMaybe(v float64, precision *int) float64 {
	if precision == nil {
		return v
	}
	return roundTo(v, *precision)
}
