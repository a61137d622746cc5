package fieldtype

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Stored list values arrive in several shapes that must decode
// interchangeably: a native slice, a JSON array string (the canonical storage
// encoding) or a legacy comma-separated string. Decoding tries those in order
// and degrades to an empty list on malformed input; it never fails.

// decodeStringList normalizes any accepted list shape to []string.
func decodeStringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		return compactStrings(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		return parseStringList(v)
	default:
		if s := strings.TrimSpace(stringify(raw)); s != "" {
			return []string{s}
		}
		return nil
	}
}

func parseStringList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var items []any
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if str := strings.TrimSpace(stringify(item)); str != "" {
				out = append(out, str)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}

	return compactStrings(strings.Split(s, ","))
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// decodeInt64List normalizes any accepted list shape to []int64, dropping
// entries that are not positive integers.
func decodeInt64List(raw any) []int64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case []int64:
		return compactInt64s(v)
	case []int:
		out := make([]int64, 0, len(v))
		for _, n := range v {
			if n > 0 {
				out = append(out, int64(n))
			}
		}
		return nilIfEmpty(out)
	case []any, []string, string:
		items := decodeStringList(raw)
		out := make([]int64, 0, len(items))
		for _, item := range items {
			if n, err := strconv.ParseInt(item, 10, 64); err == nil && n > 0 {
				out = append(out, n)
			} else if f, err := strconv.ParseFloat(item, 64); err == nil && f > 0 && f == float64(int64(f)) {
				out = append(out, int64(f))
			}
		}
		return nilIfEmpty(out)
	case int:
		return compactInt64s([]int64{int64(v)})
	case int64:
		return compactInt64s([]int64{v})
	case float64:
		if v > 0 && v == float64(int64(v)) {
			return []int64{int64(v)}
		}
		return nil
	default:
		return nil
	}
}

func compactInt64s(in []int64) []int64 {
	out := make([]int64, 0, len(in))
	for _, n := range in {
		if n > 0 {
			out = append(out, n)
		}
	}
	return nilIfEmpty(out)
}

func nilIfEmpty(in []int64) []int64 {
	if len(in) == 0 {
		return nil
	}
	return in
}

// encodeJSONList flattens a list value to its canonical storage form, a JSON
// array string of primitives.
func encodeJSONList(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
