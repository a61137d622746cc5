package fieldtype

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// Gallery is an ordered list of attachment ids ([]int64) referencing
// host-managed images. Validation inspects each id through the configured
// MediaResolver; with a nil resolver only shape rules (count, positivity)
// apply. The item-count and per-item rules run on any non-empty value
// regardless of the required flag.
type Gallery struct {
	resolver MediaResolver
}

// NewGallery creates the gallery field type. The resolver may be nil.
func NewGallery(resolver MediaResolver) Gallery {
	return Gallery{resolver: resolver}
}

func (Gallery) Name() string { return "gallery" }

func (Gallery) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapRepeater
}

func (Gallery) DefaultValue() any { return []int64(nil) }

func (Gallery) Render(def fieldkit.Definition, value any) *markup.Control {
	ids := decodeInt64List(value)
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.FormatInt(id, 10))
	}

	c := &markup.Control{
		Kind:        markup.KindGallery,
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Values:      values,
		Required:    def.Required,
		Description: def.Description,
		Multiple:    true,
	}
	if def.MaxImages > 0 {
		c.Attrs = map[string]string{"data-max-images": strconv.Itoa(def.MaxImages)}
	}
	return c
}

func (Gallery) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return decodeInt64List(raw)
}

func (g Gallery) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	ids := decodeInt64List(value)

	var errs fieldkit.Errors
	if def.MaxImages > 0 && len(ids) > def.MaxImages {
		errs.Add(def.Name, fieldkit.CodeMaxImages,
			fmt.Sprintf("%s allows at most %d images", def.DisplayLabel(), def.MaxImages))
	}

	if g.resolver != nil {
		for _, id := range ids {
			g.checkAttachment(&errs, def, id)
		}
	}
	runCallback(&errs, def, ids)
	return errs
}

func (g Gallery) checkAttachment(errs *fieldkit.Errors, def fieldkit.Definition, id int64) {
	a, err := g.resolver.Lookup(id)
	if err != nil {
		errs.Add(def.Name, fieldkit.CodeBadAttachment,
			fmt.Sprintf("attachment %d does not exist", id))
		return
	}

	if !strings.HasPrefix(a.MIMEType, "image/") {
		errs.Add(def.Name, fieldkit.CodeNotAnImage,
			fmt.Sprintf("attachment %d is not an image", id))
		return
	}

	if len(def.AllowedTypes) > 0 {
		ext := strings.TrimPrefix(strings.ToLower(path.Ext(a.FileName)), ".")
		if !containsFold(def.AllowedTypes, ext) {
			errs.Add(def.Name, fieldkit.CodeBadImageType,
				fmt.Sprintf("attachment %d has a disallowed file type %q", id, ext))
		}
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimPrefix(item, "."), s) {
			return true
		}
	}
	return false
}

// DisplayValue renders an image grid, or a compact shortcode-style reference
// when the definition's Display is "compact".
func (g Gallery) DisplayValue(value any, def fieldkit.Definition) string {
	ids := decodeInt64List(value)
	if len(ids) == 0 {
		return ""
	}

	if def.Display == "compact" {
		refs := make([]string, 0, len(ids))
		for _, id := range ids {
			refs = append(refs, strconv.FormatInt(id, 10))
		}
		return `[gallery ids="` + strings.Join(refs, ",") + `"]`
	}

	var b strings.Builder
	b.WriteString(`<div class="field-gallery">`)
	for _, id := range ids {
		if g.resolver != nil {
			if a, err := g.resolver.Lookup(id); err == nil && a.URL != "" {
				fmt.Fprintf(&b, `<img src="%s" alt="" data-attachment="%d">`, a.URL, id)
				continue
			}
		}
		fmt.Fprintf(&b, `<span class="field-gallery-item" data-attachment="%d"></span>`, id)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// StorageValue flattens to a JSON array of integers, e.g. "[1,2]".
func (Gallery) StorageValue(value any) any {
	ids := decodeInt64List(value)
	if ids == nil {
		ids = []int64{}
	}
	return encodeJSONList(ids)
}

// RuntimeValue accepts the canonical JSON form, a legacy comma-separated
// string or an already-expanded slice.
func (Gallery) RuntimeValue(stored any) any {
	return decodeInt64List(stored)
}
