package fieldtype

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldkit"
)

var (
	// blockRe removes script and style elements with their contents; their
	// inner text is payload, not user data, and must not survive stripping.
	blockRe = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)\s*>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// stringify coerces any scalar to its string form without cleaning it.
func stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// cleanString is the shared string sanitizer: coerce to string, drop script
// and style blocks wholesale, drop the remaining markup, trim. It deliberately
// does not unescape HTML entities so repeated passes cannot resurrect tags.
func cleanString(raw any) string {
	s := blockRe.ReplaceAllString(stringify(raw), "")
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

// toFloat parses any scalar into a float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// roundTo rounds half away from zero to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// emptyCheck implements the required-and-empty rule every type runs first.
// It reports handled=true when the value is empty: the caller returns the
// (possibly nil) errors immediately, so non-required empty values never reach
// the remaining rules.
func emptyCheck(value any, def fieldkit.Definition) (bool, fieldkit.Errors) {
	if !fieldkit.IsEmpty(value) {
		return false, nil
	}

	var errs fieldkit.Errors
	if def.Required {
		errs.Add(def.Name, fieldkit.CodeRequired, def.DisplayLabel()+" is required")
	}
	return true, errs
}

// checkLength applies the min_length/max_length bounds to a string value.
func checkLength(errs *fieldkit.Errors, def fieldkit.Definition, s string) {
	if def.MinLength > 0 && len(s) < def.MinLength {
		errs.Add(def.Name, fieldkit.CodeMinLength,
			fmt.Sprintf("%s must be at least %d characters long", def.DisplayLabel(), def.MinLength))
	}
	if def.MaxLength > 0 && len(s) > def.MaxLength {
		errs.Add(def.Name, fieldkit.CodeMaxLength,
			fmt.Sprintf("%s must be at most %d characters long", def.DisplayLabel(), def.MaxLength))
	}
}

// checkRange applies the min/max numeric bounds.
func checkRange(errs *fieldkit.Errors, def fieldkit.Definition, v float64) {
	if def.Min != nil && v < *def.Min {
		errs.Add(def.Name, fieldkit.CodeMinValue,
			fmt.Sprintf("%s must be at least %s", def.DisplayLabel(), formatFloat(*def.Min)))
	}
	if def.Max != nil && v > *def.Max {
		errs.Add(def.Name, fieldkit.CodeMaxValue,
			fmt.Sprintf("%s must be at most %s", def.DisplayLabel(), formatFloat(*def.Max)))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// checkPattern applies the definition's regular expression, when set. An
// invalid pattern fails closed rather than passing unvalidated input.
func checkPattern(errs *fieldkit.Errors, def fieldkit.Definition, s string) {
	if def.Pattern == "" {
		return
	}

	message := def.PatternMessage
	if message == "" {
		message = def.DisplayLabel() + " has an invalid format"
	}

	re, err := regexp.Compile(def.Pattern)
	if err != nil || !re.MatchString(s) {
		errs.Add(def.Name, fieldkit.CodeInvalid, message)
	}
}

// runCallback applies the definition's custom predicate, when set. A false
// result fails with the generic invalid message; an error's message is
// surfaced verbatim.
func runCallback(errs *fieldkit.Errors, def fieldkit.Definition, value any) {
	if def.Callback == nil {
		return
	}

	ok, err := def.Callback(value)
	switch {
	case err != nil:
		errs.Add(def.Name, fieldkit.CodeCallback, err.Error())
	case !ok:
		errs.Add(def.Name, fieldkit.CodeCallback, def.DisplayLabel()+" is invalid")
	}
}

// checkOption enforces enumerated-option membership for a scalar value.
func checkOption(errs *fieldkit.Errors, def fieldkit.Definition, value string) {
	if len(def.Options) == 0 || def.HasOption(value) {
		return
	}
	errs.Add(def.Name, fieldkit.CodeInvalidOption,
		fmt.Sprintf("%s is not a valid choice for %s", value, def.DisplayLabel()))
}

// controlID derives a stable DOM id from the field name.
func controlID(def fieldkit.Definition) string {
	return "field-" + strings.ReplaceAll(def.Name, "_", "-")
}
