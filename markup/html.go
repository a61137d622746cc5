package markup

import (
	"fmt"
	"html"
	"slices"
	"strings"
)

// HTML renders a Control to an accessible HTML fragment: the label is bound
// to the control via for/id, required controls carry exactly one visible
// marker plus aria-required, and a non-empty description is emitted once and
// referenced via aria-describedby.
func HTML(c *Control) string {
	if c == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="field field-` + string(c.Kind) + `">`)

	switch c.Kind {
	case KindRadioGroup, KindCheckboxGroup:
		writeGroup(&b, c)
	case KindCheckbox:
		writeCheckbox(&b, c)
	case KindSelect:
		writeLabel(&b, c)
		writeSelect(&b, c)
	case KindTextarea:
		writeLabel(&b, c)
		writeTextarea(&b, c)
	case KindGallery:
		writeLabel(&b, c)
		writeGallery(&b, c)
	default:
		writeLabel(&b, c)
		writeInput(&b, c)
	}

	writeDescription(&b, c)
	b.WriteString(`</div>`)
	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

func requiredMarker() string {
	return ` <span class="field-required" aria-hidden="true">*</span>`
}

func writeLabel(b *strings.Builder, c *Control) {
	b.WriteString(`<label for="` + esc(c.ID) + `">` + esc(c.Label))
	if c.Required {
		b.WriteString(requiredMarker())
	}
	b.WriteString(`</label>`)
}

// writeCommonAttrs emits the attributes shared by every control element.
func writeCommonAttrs(b *strings.Builder, c *Control) {
	if c.Required {
		b.WriteString(` required aria-required="true"`)
	}
	if c.Description != "" {
		b.WriteString(` aria-describedby="` + esc(c.ID) + `-description"`)
	}
	for _, key := range sortedAttrKeys(c.Attrs) {
		fmt.Fprintf(b, ` %s="%s"`, key, esc(c.Attrs[key]))
	}
}

func sortedAttrKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func writeInput(b *strings.Builder, c *Control) {
	inputType := c.InputType
	if inputType == "" {
		inputType = "text"
	}

	b.WriteString(`<input type="` + esc(inputType) + `" id="` + esc(c.ID) +
		`" name="` + esc(c.Name) + `" value="` + esc(c.Value) + `"`)
	writeCommonAttrs(b, c)
	b.WriteString(`>`)
}

func writeTextarea(b *strings.Builder, c *Control) {
	rows := c.Rows
	if rows <= 0 {
		rows = 4
	}

	fmt.Fprintf(b, `<textarea id="%s" name="%s" rows="%d"`, esc(c.ID), esc(c.Name), rows)
	writeCommonAttrs(b, c)
	b.WriteString(`>` + esc(c.Value) + `</textarea>`)
}

func writeSelect(b *strings.Builder, c *Control) {
	b.WriteString(`<select id="` + esc(c.ID) + `" name="` + esc(c.Name) + `"`)
	if c.Multiple {
		b.WriteString(` multiple`)
	}
	writeCommonAttrs(b, c)
	b.WriteString(`>`)

	if !c.Required && !c.Multiple {
		b.WriteString(`<option value=""></option>`)
	}
	for _, opt := range c.Options {
		b.WriteString(`<option value="` + esc(opt.Value) + `"`)
		if opt.Selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + esc(opt.Label) + `</option>`)
	}
	b.WriteString(`</select>`)
}

func writeCheckbox(b *strings.Builder, c *Control) {
	b.WriteString(`<input type="checkbox" id="` + esc(c.ID) + `" name="` + esc(c.Name) + `" value="1"`)
	if c.Value == "1" {
		b.WriteString(` checked`)
	}
	writeCommonAttrs(b, c)
	b.WriteString(`>`)
	writeLabel(b, c)
}

// writeGroup renders radio and checkbox groups as a fieldset whose legend
// carries the single required marker; individual options never repeat it.
func writeGroup(b *strings.Builder, c *Control) {
	b.WriteString(`<fieldset id="` + esc(c.ID) + `"`)
	if c.Required {
		b.WriteString(` aria-required="true"`)
	}
	if c.Description != "" {
		b.WriteString(` aria-describedby="` + esc(c.ID) + `-description"`)
	}
	b.WriteString(`><legend>` + esc(c.Label))
	if c.Required {
		b.WriteString(requiredMarker())
	}
	b.WriteString(`</legend>`)

	inputType := "radio"
	name := c.Name
	if c.Kind == KindCheckboxGroup {
		inputType = "checkbox"
		name += "[]"
	}

	for i, opt := range c.Options {
		optID := fmt.Sprintf("%s-%d", c.ID, i)
		b.WriteString(`<input type="` + inputType + `" id="` + esc(optID) +
			`" name="` + esc(name) + `" value="` + esc(opt.Value) + `"`)
		if opt.Selected {
			b.WriteString(` checked`)
		}
		b.WriteString(`>`)
		b.WriteString(`<label for="` + esc(optID) + `">` + esc(opt.Label) + `</label>`)
	}
	b.WriteString(`</fieldset>`)
}

func writeGallery(b *strings.Builder, c *Control) {
	b.WriteString(`<input type="hidden" id="` + esc(c.ID) + `" name="` + esc(c.Name) +
		`" value="` + esc(strings.Join(c.Values, ",")) + `"`)
	writeCommonAttrs(b, c)
	b.WriteString(`>`)
	b.WriteString(`<div class="field-gallery-preview" data-target="` + esc(c.ID) + `"></div>`)
}

func writeDescription(b *strings.Builder, c *Control) {
	if c.Description == "" {
		return
	}
	b.WriteString(`<p id="` + esc(c.ID) + `-description" class="field-description">` +
		esc(c.Description) + `</p>`)
}
