// Package markup holds the structured view-model field types render to, and
// a renderer that converts it to accessible HTML. Keeping the model separate
// from the HTML lets hosts that target another surface (native UI, JSON
// schema) consume the same Controls with their own renderer.
package markup

// Kind discriminates the control shapes a renderer must handle.
type Kind string

const (
	KindInput         Kind = "input"
	KindTextarea      Kind = "textarea"
	KindSelect        Kind = "select"
	KindCheckbox      Kind = "checkbox"
	KindRadioGroup    Kind = "radio-group"
	KindCheckboxGroup Kind = "checkbox-group"
	KindGallery       Kind = "gallery"
)

// ControlOption is one renderable choice of a select, radio or checkbox
// group, with its selection state resolved against the current value.
type ControlOption struct {
	Value    string
	Label    string
	Selected bool
}

// Control is the view-model of one input control: everything a renderer
// needs to produce a self-contained, accessible widget. Field types build it
// from a definition and the current value; it carries no behavior.
type Control struct {
	Kind Kind

	// InputType is the HTML input type for KindInput ("text", "email",
	// "url", "tel", "number").
	InputType string

	ID    string
	Name  string
	Label string

	// Value is the scalar current value; Values carries multi-valued state
	// for checkbox groups and galleries.
	Value  string
	Values []string

	Required    bool
	Description string
	Multiple    bool
	Rows        int

	// Attrs are extra constraint attributes (min, max, step, maxlength,
	// pattern) in deterministic key order when rendered.
	Attrs map[string]string

	Options []ControlOption
}
