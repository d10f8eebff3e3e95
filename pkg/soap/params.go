package soap

import (
	"fmt"
	"strconv"
)

// NumericBoolSet holds the parameter names whose boolean values must
// serialize as "1"/"0" instead of "true"/"false". The remote API mixes
// both conventions across operations, so the set is configuration,
// not something the connector infers.
type NumericBoolSet map[string]struct{}

// NewNumericBoolSet builds a set from the given parameter names.
func NewNumericBoolSet(names ...string) NumericBoolSet {
	s := make(NumericBoolSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set. A nil set contains nothing.
func (s NumericBoolSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// ParamValue converts a typed parameter value into its wire string
// form. It is total: every input yields a string, never an error.
//
//   - nil            -> ""
//   - bool           -> "1"/"0" if name is in numeric, else "true"/"false"
//   - integers       -> base-10 decimal string
//   - floats         -> shortest decimal representation
//   - string         -> unchanged (callers decide whether to trim)
//   - anything else  -> fmt.Sprint fallback
func ParamValue(v any, name string, numeric NumericBoolSet) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if numeric.Contains(name) {
			if val {
				return "1"
			}
			return "0"
		}
		return strconv.FormatBool(val)
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
