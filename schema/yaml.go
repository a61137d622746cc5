package schema

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldkit"
)

// LoadYAML decodes a YAML schema document into field definitions.
func LoadYAML(r io.Reader) ([]fieldkit.Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	return doc.convert()
}
