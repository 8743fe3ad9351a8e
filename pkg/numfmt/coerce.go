package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat coerces supported value kinds into a float64. Strings are trimmed
// and parsed; NaN and infinities report failure so callers can fall back to
// their no-value sentinel.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, finite(v)
	case float32:
		return float64(v), finite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, finite(f)
	case nil:
		return 0, false
	default:
		return 0, false
	}
}

// ToInt coerces a value into an integer, truncating floats toward zero.
// Failure (including blank or non-numeric strings) reports ok=false; callers
// treat that as "no value configured" rather than zero.
func ToInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if !finite(v) {
			return 0, false
		}
		return int(math.Trunc(v)), true
	case float32:
		return ToInt(float64(v))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return ToInt(f)
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case nil:
		return 0, false
	default:
		return 0, false
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
