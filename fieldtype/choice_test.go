package fieldtype_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/fieldtype"
	"github.com/dmitrymomot/fieldkit/markup"
)

func planDef() fieldkit.Definition {
	return fieldkit.Definition{
		Name:     "plan",
		Type:     "radio",
		Label:    "Plan",
		Required: true,
		Options: []fieldkit.Option{
			{Value: "basic", Label: "Basic"},
			{Value: "pro", Label: "Pro"},
			{Value: "enterprise", Label: "Enterprise"},
		},
	}
}

func TestRadio(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	radio := fieldtype.NewRadio()
	def := planDef()

	t.Run("no selection on required field", func(t *testing.T) {
		errs := radio.Validate(ctx, "", def)
		require.NotNil(t, errs)
		assert.True(t, errs.HasCode("plan", fieldkit.CodeRequired))
	})

	t.Run("undeclared option", func(t *testing.T) {
		errs := radio.Validate(ctx, "platinum", def)
		assert.True(t, errs.HasCode("plan", fieldkit.CodeInvalidOption))
	})

	t.Run("declared option passes", func(t *testing.T) {
		assert.Nil(t, radio.Validate(ctx, "pro", def))
	})

	t.Run("display maps value to label", func(t *testing.T) {
		assert.Equal(t, "Pro", radio.DisplayValue("pro", def))
	})

	t.Run("rendered group carries one required marker", func(t *testing.T) {
		html := markup.HTML(radio.Render(def, ""))

		assert.Equal(t, 1, strings.Count(html, `class="field-required"`),
			"the legend owns the single required marker, options never repeat it")
		assert.Equal(t, 3, strings.Count(html, `type="radio"`))
		assert.Contains(t, html, `<label for="field-plan-0">Basic</label>`)
	})

	t.Run("rendered group preselects the current value", func(t *testing.T) {
		html := markup.HTML(radio.Render(def, "pro"))
		assert.Contains(t, html, `value="pro" checked`)
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sel := fieldtype.NewSelect()
	def := planDef()
	def.Type = "select"

	t.Run("validates option membership", func(t *testing.T) {
		assert.Nil(t, sel.Validate(ctx, "basic", def))
		errs := sel.Validate(ctx, "bogus", def)
		assert.True(t, errs.HasCode("plan", fieldkit.CodeInvalidOption))
	})

	t.Run("sanitize strips markup and trims", func(t *testing.T) {
		assert.Equal(t, "pro", sel.Sanitize(ctx, " <b>pro</b> ", def))
	})

	t.Run("render marks the selected option", func(t *testing.T) {
		c := sel.Render(def, "enterprise")
		assert.Equal(t, markup.KindSelect, c.Kind)
		require.Len(t, c.Options, 3)
		assert.True(t, c.Options[2].Selected)

		html := markup.HTML(c)
		assert.Contains(t, html, `<option value="enterprise" selected>Enterprise</option>`)
	})

	t.Run("scalar storage passes through", func(t *testing.T) {
		assert.Equal(t, "pro", sel.StorageValue("pro"))
		assert.Equal(t, "pro", sel.RuntimeValue("pro"))
	})
}

func TestCheckbox(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cb := fieldtype.NewCheckbox()
	def := fieldkit.Definition{Name: "terms", Type: "checkbox", Label: "Terms", Required: true}

	t.Run("sanitize interprets submission shapes", func(t *testing.T) {
		assert.Equal(t, true, cb.Sanitize(ctx, "on", def))
		assert.Equal(t, true, cb.Sanitize(ctx, "Yes", def))
		assert.Equal(t, true, cb.Sanitize(ctx, 1, def))
		assert.Equal(t, false, cb.Sanitize(ctx, "0", def))
		assert.Equal(t, false, cb.Sanitize(ctx, nil, def))
	})

	t.Run("required checkbox must be checked", func(t *testing.T) {
		errs := cb.Validate(ctx, false, def)
		assert.True(t, errs.HasCode("terms", fieldkit.CodeRequired))
		assert.Nil(t, cb.Validate(ctx, true, def))
	})

	t.Run("storage round-trips through 1 and empty", func(t *testing.T) {
		assert.Equal(t, "1", cb.StorageValue(true))
		assert.Equal(t, "", cb.StorageValue(false))
		assert.Equal(t, true, cb.RuntimeValue("1"))
		assert.Equal(t, false, cb.RuntimeValue(""))
	})

	t.Run("display", func(t *testing.T) {
		assert.Equal(t, "Yes", cb.DisplayValue(true, def))
		assert.Equal(t, "No", cb.DisplayValue(false, def))
	})
}
