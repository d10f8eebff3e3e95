package entity

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/xmltree"
)

// keyVariants returns the capitalization variants under which the
// remote API has been observed to deliver a field: the canonical
// lowerCamel name, its UpperCamel form, and the "Id" spelling of a
// trailing "ID".
func keyVariants(name string) []string {
	vs := []string{name}
	if up := upperFirst(name); up != name {
		vs = append(vs, up)
	}
	if strings.HasSuffix(name, "ID") {
		alt := strings.TrimSuffix(name, "ID") + "Id"
		vs = append(vs, alt)
		if up := upperFirst(alt); up != alt {
			vs = append(vs, up)
		}
	}
	return vs
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fieldText returns the first non-empty text value among the case
// variants of name.
func fieldText(t xmltree.Tree, name string) (string, bool) {
	for _, key := range keyVariants(name) {
		if s, ok := xmltree.Text(t[key]); ok {
			return s, true
		}
	}
	return "", false
}

// fieldInt returns the first parseable integer among the case
// variants of name.
func fieldInt(t xmltree.Tree, name string) (int, bool) {
	for _, key := range keyVariants(name) {
		if n, ok := xmltree.Int(t[key]); ok {
			return n, true
		}
	}
	return 0, false
}

// fieldNumber returns the first parseable float among the case
// variants of name.
func fieldNumber(t xmltree.Tree, name string) (float64, bool) {
	for _, key := range keyVariants(name) {
		if f, ok := xmltree.Number(t[key]); ok {
			return f, true
		}
	}
	return 0, false
}

// hasField reports whether any case variant of name is present.
func hasField(t xmltree.Tree, name string) bool {
	for _, key := range keyVariants(name) {
		if _, ok := t[key]; ok {
			return true
		}
	}
	return false
}

// extraFields copies every key the parser did not consume, so unknown
// server-side additions survive the round trip.
func extraFields(t xmltree.Tree, known []string) map[string]any {
	knownKeys := make(map[string]struct{})
	for _, name := range known {
		for _, key := range keyVariants(name) {
			knownKeys[key] = struct{}{}
		}
	}
	var extra map[string]any
	for k, v := range t {
		if k == xmltree.TextKey {
			continue
		}
		if _, ok := knownKeys[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}
