package xmltree

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

// TextKey is the reserved key under which mixed-content text is stored
// when an element has both child elements and its own text.
const TextKey = "#text"

// Tree is a generic XML document: tag name (namespace prefix stripped)
// to value. A value is a string (leaf text, trimmed), a nested Tree,
// or a []any of either when sibling tags repeat.
type Tree map[string]any

// Parse converts raw XML into a Tree. It never fails: malformed or
// empty input yields an empty tree, because callers routinely feed it
// regex-extracted fragments that are not complete documents. A
// fragment with several top-level siblings (the shape ExtractBlock
// returns for wrapper tags) parses as if wrapped in a synthetic root,
// so none of the siblings are lost.
func Parse(raw string) Tree {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return Tree{}
	}
	roots := doc.ChildElements()
	switch len(roots) {
	case 0:
		return Tree{}
	case 1:
		return Tree{roots[0].Tag: convert(roots[0])}
	}
	t := make(Tree, len(roots))
	for _, el := range roots {
		addValue(t, el.Tag, convert(el))
	}
	return t
}

func convert(el *etree.Element) any {
	children := el.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(el.Text())
	}

	t := make(Tree, len(children))
	for _, c := range children {
		addValue(t, c.Tag, convert(c))
	}
	if txt := strings.TrimSpace(el.Text()); txt != "" {
		t[TextKey] = txt
	}
	return t
}

// addValue inserts v under tag, collapsing repeated siblings into a
// list.
func addValue(t Tree, tag string, v any) {
	existing, ok := t[tag]
	if !ok {
		t[tag] = v
		return
	}
	if list, isList := existing.([]any); isList {
		t[tag] = append(list, v)
	} else {
		t[tag] = []any{existing, v}
	}
}

// Get returns the value of the first key present in the tree.
func (t Tree) Get(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := t[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Child returns the first key whose value is a nested Tree.
func (t Tree) Child(keys ...string) (Tree, bool) {
	for _, k := range keys {
		if sub, ok := t[k].(Tree); ok {
			return sub, true
		}
	}
	return nil, false
}

// Text returns the first non-empty text value among the given keys.
// A nested Tree satisfies Text via its mixed-content entry.
func (t Tree) Text(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := Text(t[k]); ok {
			return s, true
		}
	}
	return "", false
}

// List returns the value of the first key present, as a list. A lone
// value is wrapped into a one-element list; the remote API does not
// distinguish a single record from a list of one.
func (t Tree) List(keys ...string) ([]any, bool) {
	for _, k := range keys {
		v, ok := t[k]
		if !ok {
			continue
		}
		if list, isList := v.([]any); isList {
			return list, true
		}
		return []any{v}, true
	}
	return nil, false
}

// Find searches the whole tree depth-first for the first occurrence of
// key, regardless of nesting depth. The remote API is not consistent
// about where fields like statusCode live, so lookups cannot anchor to
// a specific level.
func (t Tree) Find(key string) (any, bool) {
	if v, ok := t[key]; ok {
		return v, true
	}
	for _, v := range t {
		if found, ok := findIn(v, key); ok {
			return found, true
		}
	}
	return nil, false
}

func findIn(v any, key string) (any, bool) {
	switch val := v.(type) {
	case Tree:
		return val.Find(key)
	case []any:
		for _, item := range val {
			if found, ok := findIn(item, key); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Text coerces a tree value into its text content.
func Text(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, val != ""
	case Tree:
		if s, ok := val[TextKey].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Int coerces a tree value into an integer via base-10 conversion.
// Non-numeric text yields (0, false) rather than an error.
func Int(v any) (int, bool) {
	s, ok := Text(v)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Number coerces a tree value into a float64.
func Number(v any) (float64, bool) {
	s, ok := Text(v)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var blockPatterns sync.Map

// ExtractBlock pulls the inner XML of the first <tag>...</tag> block
// out of raw text without structural parsing, tolerating namespace
// prefixes. Used to isolate a named fragment before feeding it to
// Parse. Returns ("", false) when the tag is absent.
func ExtractBlock(raw, tag string) (string, bool) {
	re := blockPattern(tag)
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func blockPattern(tag string) *regexp.Regexp {
	if cached, ok := blockPatterns.Load(tag); ok {
		return cached.(*regexp.Regexp)
	}
	q := regexp.QuoteMeta(tag)
	re := regexp.MustCompile(`(?s)<(?:[A-Za-z0-9_.-]+:)?` + q + `(?:\s[^>]*)?>(.*?)</(?:[A-Za-z0-9_.-]+:)?` + q + `>`)
	blockPatterns.Store(tag, re)
	return re
}
