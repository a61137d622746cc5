package schema

import (
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/fieldkit"
)

// LoadJSON decodes a JSON schema document into field definitions.
func LoadJSON(r io.Reader) ([]fieldkit.Definition, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	return doc.convert()
}
