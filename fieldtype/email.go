package fieldtype

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Email is a string field validated as an email address.
type Email struct{}

// NewEmail creates the email field type.
func NewEmail() Email { return Email{} }

func (Email) Name() string { return "email" }

func (Email) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapSearchable || c == fieldkit.CapSortable
}

func (Email) DefaultValue() any { return "" }

func (Email) Render(def fieldkit.Definition, value any) *markup.Control {
	return &markup.Control{
		Kind:        markup.KindInput,
		InputType:   "email",
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
	}
}

// Sanitize lowercases the address; addresses are case-insensitive in
// practice and storing one casing keeps lookups consistent.
func (Email) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return strings.ToLower(cleanString(raw))
}

func (Email) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	s := stringify(value)

	var errs fieldkit.Errors
	if !validEmail(s) {
		errs.Add(def.Name, fieldkit.CodeInvalidEmail,
			def.DisplayLabel()+" must be a valid email address")
	}
	checkLength(&errs, def, s)
	runCallback(&errs, def, value)
	return errs
}

func (Email) DisplayValue(value any, _ fieldkit.Definition) string {
	return stringify(value)
}

func (Email) StorageValue(value any) any {
	return stringify(value)
}

func (Email) RuntimeValue(stored any) any {
	return stringify(stored)
}

// validEmail parses with net/mail then applies the stricter checks typical
// web submissions need: a single @, a non-empty local part and a dotted
// domain without empty segments.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	domain := parts[1]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
