package fieldtype

import (
	"context"
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// phoneRe matches E.164-style numbers after display formatting is removed.
var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{5,14}$`)

// Phone is a string field validated as an international phone number.
// A Definition.Pattern overrides the built-in E.164 check for hosts with
// regional formats.
type Phone struct{}

// NewPhone creates the phone field type.
func NewPhone() Phone { return Phone{} }

func (Phone) Name() string { return "phone" }

func (Phone) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapSearchable
}

func (Phone) DefaultValue() any { return "" }

func (Phone) Render(def fieldkit.Definition, value any) *markup.Control {
	return &markup.Control{
		Kind:        markup.KindInput,
		InputType:   "tel",
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
	}
}

// Sanitize keeps digits and common phone punctuation so the stored value
// still resembles what the user typed.
func (Phone) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	s := cleanString(raw)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-', r == ' ', r == '(', r == ')':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func (Phone) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	s := stringify(value)

	var errs fieldkit.Errors
	if def.Pattern != "" {
		checkPattern(&errs, def, s)
	} else if !phoneRe.MatchString(phoneDigits(s)) {
		errs.Add(def.Name, fieldkit.CodeInvalidPhone,
			def.DisplayLabel()+" must be a valid phone number")
	}
	checkLength(&errs, def, s)
	runCallback(&errs, def, value)
	return errs
}

func (Phone) DisplayValue(value any, _ fieldkit.Definition) string {
	return stringify(value)
}

func (Phone) StorageValue(value any) any {
	return stringify(value)
}

func (Phone) RuntimeValue(stored any) any {
	return stringify(stored)
}

// phoneDigits strips display punctuation, leaving digits and a leading plus.
func phoneDigits(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
