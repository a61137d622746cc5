// Package schema loads field definitions from declarative YAML or JSON
// documents and registers them in bulk. It covers the declarative subset of
// fieldkit.Definition; callbacks are code and cannot be expressed in a file.
//
// Document shape:
//
//	fields:
//	  - name: price
//	    type: currency
//	    label: Price
//	    required: true
//	    min: 10
//	    max: 100
//	  - name: amenities
//	    type: multiselect
//	    options:
//	      - { value: wifi, label: WiFi }
//	      - { value: pool, label: Pool }
package schema

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/fieldkit"
)

type document struct {
	Fields []fieldSpec `yaml:"fields" json:"fields"`
}

type fieldSpec struct {
	Name             string       `yaml:"name" json:"name"`
	Type             string       `yaml:"type" json:"type"`
	Label            string       `yaml:"label" json:"label"`
	Description      string       `yaml:"description" json:"description"`
	Required         bool         `yaml:"required" json:"required"`
	Options          []optionSpec `yaml:"options" json:"options"`
	Min              *float64     `yaml:"min" json:"min"`
	Max              *float64     `yaml:"max" json:"max"`
	MinLength        int          `yaml:"min_length" json:"min_length"`
	MaxLength        int          `yaml:"max_length" json:"max_length"`
	Pattern          string       `yaml:"pattern" json:"pattern"`
	PatternMessage   string       `yaml:"pattern_message" json:"pattern_message"`
	AllowNegative    bool         `yaml:"allow_negative" json:"allow_negative"`
	Precision        *int         `yaml:"precision" json:"precision"`
	CurrencySymbol   string       `yaml:"currency_symbol" json:"currency_symbol"`
	CurrencyPosition string       `yaml:"currency_position" json:"currency_position"`
	MaxImages        int          `yaml:"max_images" json:"max_images"`
	AllowedTypes     []string     `yaml:"allowed_types" json:"allowed_types"`
	Display          string       `yaml:"display" json:"display"`
	Rows             int          `yaml:"rows" json:"rows"`
}

type optionSpec struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// convert validates the structural requirements (name and type present) and
// maps the document to definitions. An unknown type key is not an error here:
// the registry accepts it and validation fails closed at request time.
func (d document) convert() ([]fieldkit.Definition, error) {
	if len(d.Fields) == 0 {
		return nil, ErrNoFields
	}

	defs := make([]fieldkit.Definition, 0, len(d.Fields))
	for i, f := range d.Fields {
		if f.Name == "" {
			return nil, errors.Join(ErrInvalidField, fmt.Errorf("field %d: name is required", i))
		}
		if f.Type == "" {
			return nil, errors.Join(ErrInvalidField, fmt.Errorf("field %q: type is required", f.Name))
		}

		def := fieldkit.Definition{
			Name:             f.Name,
			Type:             f.Type,
			Label:            f.Label,
			Description:      f.Description,
			Required:         f.Required,
			Min:              f.Min,
			Max:              f.Max,
			MinLength:        f.MinLength,
			MaxLength:        f.MaxLength,
			Pattern:          f.Pattern,
			PatternMessage:   f.PatternMessage,
			AllowNegative:    f.AllowNegative,
			Precision:        f.Precision,
			CurrencySymbol:   f.CurrencySymbol,
			CurrencyPosition: f.CurrencyPosition,
			MaxImages:        f.MaxImages,
			AllowedTypes:     f.AllowedTypes,
			Display:          f.Display,
			Rows:             f.Rows,
		}
		for _, opt := range f.Options {
			def.Options = append(def.Options, fieldkit.Option{Value: opt.Value, Label: opt.Label})
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// Apply registers every definition into the registry, in document order.
func Apply(reg *fieldkit.Registry, defs []fieldkit.Definition) {
	for _, def := range defs {
		reg.RegisterDefinition(def)
	}
}
