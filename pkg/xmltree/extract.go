package xmltree

import (
	"strings"
	"time"
)

// IntResult is a parsed integer response.
type IntResult struct {
	ResultBase
	Value *int
}

// IntListResult is a parsed integer-list response. Values is nil when
// the payload was absent.
type IntListResult struct {
	ResultBase
	Values []int
}

// StringResult is a parsed string response.
type StringResult struct {
	ResultBase
	Value *string
}

// StringListResult is a parsed string-list response.
type StringListResult struct {
	ResultBase
	Values []string
}

// DateResult is a parsed date response.
type DateResult struct {
	ResultBase
	Value *time.Time
}

// VoidResult is a response that carries only the status fields.
type VoidResult struct {
	ResultBase
}

// AsInteger parses raw XML as an integer response. A missing or
// non-numeric payload yields a nil Value, never an error.
func AsInteger(raw string) IntResult {
	t := Parse(raw)
	res := IntResult{ResultBase: ExtractResultBase(t)}
	if v, ok := findPayload(t); ok {
		if n, numOK := Int(v); numOK {
			res.Value = &n
		}
	}
	return res
}

// AsIntegerList parses raw XML as an integer-list response. It accepts
// repeated <data> siblings, a wrapper holding repeated integer-valued
// children, and a lone value (treated as a one-element list).
func AsIntegerList(raw string) IntListResult {
	t := Parse(raw)
	res := IntListResult{ResultBase: ExtractResultBase(t)}
	for _, v := range payloadList(t) {
		if n, ok := Int(v); ok {
			res.Values = append(res.Values, n)
		}
	}
	return res
}

// AsString parses raw XML as a string response.
func AsString(raw string) StringResult {
	t := Parse(raw)
	res := StringResult{ResultBase: ExtractResultBase(t)}
	if v, ok := findPayload(t); ok {
		if s, textOK := Text(v); textOK {
			res.Value = &s
		}
	}
	return res
}

// AsStringList parses raw XML as a string-list response.
func AsStringList(raw string) StringListResult {
	t := Parse(raw)
	res := StringListResult{ResultBase: ExtractResultBase(t)}
	for _, v := range payloadList(t) {
		if s, ok := Text(v); ok {
			res.Values = append(res.Values, s)
		}
	}
	return res
}

// dateLayouts are tried in order when coercing date payloads. The
// remote API emits several of these depending on operation and server
// version.
var dateLayouts = []string{
	"2006-01-02 15:04:05.0",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// AsDate parses raw XML as a date response. Unrecognized date text
// yields a nil Value.
func AsDate(raw string) DateResult {
	t := Parse(raw)
	res := DateResult{ResultBase: ExtractResultBase(t)}
	v, ok := findPayload(t)
	if !ok {
		return res
	}
	s, textOK := Text(v)
	if !textOK {
		return res
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			res.Value = &parsed
			return res
		}
	}
	return res
}

// AsVoid parses raw XML as a void response: only the status fields.
func AsVoid(raw string) VoidResult {
	return VoidResult{ResultBase: ExtractResultBase(Parse(raw))}
}

// findPayload locates the typed payload node, tolerating both the
// direct shape (<data> at any depth) and the legacy shape where the
// value sits as bare text under <return>.
func findPayload(t Tree) (any, bool) {
	if v, ok := t.Find("data"); ok {
		return v, true
	}
	if v, ok := t.Find("return"); ok {
		switch v.(type) {
		case string, []any:
			return v, true
		}
	}
	return nil, false
}

// payloadList locates the payload and normalizes it to a list,
// unwrapping single-key containers such as <data><integer>..</integer>
// <integer>..</integer></data>.
func payloadList(t Tree) []any {
	v, ok := findPayload(t)
	if !ok {
		return nil
	}
	if list, isList := v.([]any); isList {
		return list
	}
	if sub, isTree := v.(Tree); isTree {
		for _, key := range []string{"integer", "int", "string", "data", "value"} {
			if inner, found := sub.List(key); found {
				return inner
			}
		}
		return []any{sub}
	}
	return []any{v}
}
