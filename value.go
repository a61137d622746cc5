package fieldkit

import "strings"

// IsEmpty reports whether a sanitized value counts as absent for required
// checks: nil, whitespace-only strings, empty slices and false booleans are
// empty. Numeric zero is a real value and is not empty.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case []string:
		return len(v) == 0
	case []int64:
		return len(v) == 0
	case []int:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
