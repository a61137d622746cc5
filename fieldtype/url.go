package fieldtype

import (
	"context"
	"net/url"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// URL is a string field validated as an absolute URL with scheme and host.
type URL struct{}

// NewURL creates the url field type.
func NewURL() URL { return URL{} }

func (URL) Name() string { return "url" }

func (URL) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapSearchable
}

func (URL) DefaultValue() any { return "" }

func (URL) Render(def fieldkit.Definition, value any) *markup.Control {
	return &markup.Control{
		Kind:        markup.KindInput,
		InputType:   "url",
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
	}
}

func (URL) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return cleanString(raw)
}

func (URL) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	s := stringify(value)

	var errs fieldkit.Errors
	if u, err := url.ParseRequestURI(s); err != nil || u.Scheme == "" || u.Host == "" {
		errs.Add(def.Name, fieldkit.CodeInvalidURL,
			def.DisplayLabel()+" must be a valid URL")
	}
	checkLength(&errs, def, s)
	runCallback(&errs, def, value)
	return errs
}

func (URL) DisplayValue(value any, _ fieldkit.Definition) string {
	return stringify(value)
}

func (URL) StorageValue(value any) any {
	return stringify(value)
}

func (URL) RuntimeValue(stored any) any {
	return stringify(stored)
}
