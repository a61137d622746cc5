package fieldtype

import (
	"context"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Textarea is a multi-line string field. Unlike Text it preserves line
// breaks, so sanitization strips markup per line without collapsing
// whitespace.
type Textarea struct{}

// NewTextarea creates the textarea field type.
func NewTextarea() Textarea { return Textarea{} }

func (Textarea) Name() string { return "textarea" }

func (Textarea) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapSearchable
}

func (Textarea) DefaultValue() any { return "" }

func (Textarea) Render(def fieldkit.Definition, value any) *markup.Control {
	c := &markup.Control{
		Kind:        markup.KindTextarea,
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
		Rows:        def.Rows,
	}
	applyLengthAttrs(c, def)
	return c
}

func (Textarea) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return cleanString(raw)
}

func (Textarea) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
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

func (Textarea) DisplayValue(value any, _ fieldkit.Definition) string {
	return stringify(value)
}

func (Textarea) StorageValue(value any) any {
	return stringify(value)
}

func (Textarea) RuntimeValue(stored any) any {
	return stringify(stored)
}
