// Package fieldtype provides the built-in field type implementations: plain
// and multi-line text, email, URL, phone, number, currency, single and
// multiple choice, checkbox and image gallery. Each type is a stateless
// strategy registered into a fieldkit.Registry under its Name key; new kinds
// are added by implementing fieldkit.Type and registering, never by touching
// the validator.
package fieldtype

import (
	"context"
	"strconv"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Text is a single-line string field with length and pattern constraints.
type Text struct{}

// NewText creates the text field type.
func NewText() Text { return Text{} }

func (Text) Name() string { return "text" }

func (Text) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapSearchable || c == fieldkit.CapSortable
}

func (Text) DefaultValue() any { return "" }

func (Text) Render(def fieldkit.Definition, value any) *markup.Control {
	c := &markup.Control{
		Kind:        markup.KindInput,
		InputType:   "text",
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
	}
	applyLengthAttrs(c, def)
	return c
}

func (Text) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return cleanString(raw)
}

func (Text) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	s := stringify(value)

	var errs fieldkit.Errors
	checkPattern(&errs, def, s)
	checkLength(&errs, def, s)
	runCallback(&errs, def, value)
	return errs
}

func (Text) DisplayValue(value any, _ fieldkit.Definition) string {
	return stringify(value)
}

func (Text) StorageValue(value any) any {
	return stringify(value)
}

func (Text) RuntimeValue(stored any) any {
	return stringify(stored)
}

// applyLengthAttrs attaches minlength/maxlength/pattern constraint attributes
// shared by the text-like controls.
func applyLengthAttrs(c *markup.Control, def fieldkit.Definition) {
	if def.MinLength > 0 || def.MaxLength > 0 || def.Pattern != "" {
		c.Attrs = make(map[string]string)
	}
	if def.MinLength > 0 {
		c.Attrs["minlength"] = strconv.Itoa(def.MinLength)
	}
	if def.MaxLength > 0 {
		c.Attrs["maxlength"] = strconv.Itoa(def.MaxLength)
	}
	if def.Pattern != "" {
		c.Attrs["pattern"] = def.Pattern
	}
}
