package fieldtype

import (
	"context"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// DefaultCurrencyPrecision is the number of decimal digits currency values
// are rounded to when the definition does not set one.
const DefaultCurrencyPrecision = 2

// currencyFormatting is stripped from input before numeric parsing.
const currencyFormatting = "$€£¥, "

// Currency is a monetary float64 field. Values are rounded (not truncated)
// to the configured precision on sanitize; negative values are rejected
// unless the definition allows them. Display formatting uses locale-aware
// grouping separators with the symbol before or after the amount.
type Currency struct {
	locale language.Tag
}

// CurrencyOption configures the currency field type.
type CurrencyOption func(*Currency)

// WithLocale sets the locale used for display grouping separators.
func WithLocale(tag language.Tag) CurrencyOption {
	return func(c *Currency) {
		c.locale = tag
	}
}

// NewCurrency creates the currency field type. The default display locale is
// English ("1,234.56").
func NewCurrency(opts ...CurrencyOption) Currency {
	c := Currency{locale: language.English}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (Currency) Name() string { return "currency" }

func (Currency) Supports(c fieldkit.Capability) bool {
	return c == fieldkit.CapFilterable || c == fieldkit.CapSortable
}

func (Currency) DefaultValue() any { return 0.0 }

func (Currency) Render(def fieldkit.Definition, value any) *markup.Control {
	c := &markup.Control{
		Kind:        markup.KindInput,
		InputType:   "number",
		ID:          controlID(def),
		Name:        def.Name,
		Label:       def.DisplayLabel(),
		Value:       stringify(value),
		Required:    def.Required,
		Description: def.Description,
		Attrs:       map[string]string{"step": stepFor(precisionOf(def))},
	}
	if def.Min != nil {
		c.Attrs["min"] = formatFloat(*def.Min)
	} else if !def.AllowNegative {
		c.Attrs["min"] = "0"
	}
	if def.Max != nil {
		c.Attrs["max"] = formatFloat(*def.Max)
	}
	return c
}

// Sanitize strips currency formatting (symbol, grouping separators) then
// coerces to float64 rounded to the field's precision. Empty input stays
// empty; non-numeric input degrades to 0.0.
func (Currency) Sanitize(_ context.Context, raw any, def fieldkit.Definition) any {
	precision := precisionOf(def)

	if s, ok := raw.(string); ok {
		stripped := strings.TrimSpace(stripCurrencyFormatting(cleanString(s), def.CurrencySymbol))
		return sanitizeNumeric(stripped, &precision)
	}
	return sanitizeNumeric(raw, &precision)
}

func (Currency) Validate(_ context.Context, value any, def fieldkit.Definition) fieldkit.Errors {
	if done, errs := emptyCheck(value, def); done {
		return errs
	}

	var errs fieldkit.Errors
	v, ok := toFloat(value)
	if !ok {
		errs.Add(def.Name, fieldkit.CodeNotNumeric, def.DisplayLabel()+" must be a number")
		return errs
	}

	if v < 0 && !def.AllowNegative {
		errs.Add(def.Name, fieldkit.CodeNegativeValue, def.DisplayLabel()+" must not be negative")
	}
	checkRange(&errs, def, v)
	runCallback(&errs, def, value)
	return errs
}

// DisplayValue renders the amount with grouping separators, fixed precision
// and the configured symbol, e.g. "$1,234.57" or "1 234,57€" per locale.
func (c Currency) DisplayValue(value any, def fieldkit.Definition) string {
	v, ok := toFloat(value)
	if !ok {
		return stringify(value)
	}

	symbol := def.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}

	p := message.NewPrinter(c.locale)
	amount := p.Sprint(number.Decimal(v, number.Scale(precisionOf(def))))

	if def.CurrencyPosition == "after" {
		return sign + amount + symbol
	}
	return sign + symbol + amount
}

func (Currency) StorageValue(value any) any {
	if v, ok := toFloat(value); ok {
		return v
	}
	return 0.0
}

func (Currency) RuntimeValue(stored any) any {
	if fieldkit.IsEmpty(stored) {
		return 0.0
	}
	if v, ok := toFloat(stored); ok {
		return v
	}
	return 0.0
}

func precisionOf(def fieldkit.Definition) int {
	if def.Precision != nil && *def.Precision >= 0 {
		return *def.Precision
	}
	return DefaultCurrencyPrecision
}

func stepFor(precision int) string {
	if precision <= 0 {
		return "1"
	}
	return "0." + strings.Repeat("0", precision-1) + "1"
}

func stripCurrencyFormatting(s, symbol string) string {
	if symbol != "" {
		s = strings.ReplaceAll(s, symbol, "")
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencyFormatting, r) {
			return -1
		}
		return r
	}, s)
}
