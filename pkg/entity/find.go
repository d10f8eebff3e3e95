package entity

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/xmltree"
)

// wrapper keys the remote API nests records under, tried in order.
var wrapperKeys = []string{"return", "data"}

// findRecord locates a record in the tree using the ordered strategy
// described in the package documentation. containers are the directly
// named element names to try first (case variants included by the
// caller); hints are field names of which at least two must be present
// for a node to duck-type as the record.
func findRecord(t xmltree.Tree, containers, hints []string) (xmltree.Tree, bool) {
	if t == nil {
		return nil, false
	}

	// 1. Directly named containers.
	for _, c := range containers {
		if sub, ok := t.Child(keyVariants(c)...); ok {
			return sub, true
		}
	}

	// 2. The node itself.
	if looksLike(t, hints) {
		return t, true
	}

	// 3. Known wrappers: return, *Result, data.
	for _, key := range wrapperKeys {
		if sub, ok := t.Child(key); ok {
			if rec, found := findRecord(sub, containers, hints); found {
				return rec, true
			}
		}
	}
	for key, v := range t {
		if !strings.HasSuffix(key, "Result") {
			continue
		}
		if sub, ok := v.(xmltree.Tree); ok {
			if rec, found := findRecord(sub, containers, hints); found {
				return rec, true
			}
		}
	}

	// 4. Exhaustive depth-first search of object-valued children.
	for _, v := range t {
		if sub, ok := v.(xmltree.Tree); ok {
			if rec, found := findRecord(sub, containers, hints); found {
				return rec, true
			}
		}
	}
	return nil, false
}

// looksLike duck-types a node as a record when at least two of the
// expected fields are present.
func looksLike(t xmltree.Tree, hints []string) bool {
	matches := 0
	for _, h := range hints {
		if hasField(t, h) {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// findRecordList locates a list of records. It handles array-valued
// data wrappers, pluralized container keys, and the remote API's
// single-object-vs-array ambiguity (a lone record is a list of one).
// The list search is exhaustive before the single-record fallback, so
// a list buried under the envelope body still wins over a stray
// record-shaped sibling.
func findRecordList(t xmltree.Tree, containers, hints []string) []xmltree.Tree {
	if t == nil {
		return nil
	}

	keys := make([]string, 0, len(containers)*4+1)
	for _, c := range containers {
		keys = append(keys, keyVariants(c+"s")...)
	}
	for _, c := range containers {
		keys = append(keys, keyVariants(c)...)
	}
	keys = append(keys, "data")

	if recs := searchLists(t, keys, containers, hints); len(recs) > 0 {
		return recs
	}
	if rec, ok := findRecord(t, containers, hints); ok {
		return []xmltree.Tree{rec}
	}
	return nil
}

// searchLists walks the tree depth-first looking for a list-valued key
// whose entries duck-type as records.
func searchLists(t xmltree.Tree, keys, containers, hints []string) []xmltree.Tree {
	for _, key := range keys {
		if list, ok := t.List(key); ok {
			if recs := recordsFrom(list, containers, hints); len(recs) > 0 {
				return recs
			}
		}
	}
	for _, v := range t {
		if sub, ok := v.(xmltree.Tree); ok {
			if recs := searchLists(sub, keys, containers, hints); len(recs) > 0 {
				return recs
			}
		}
	}
	return nil
}

// recordsFrom filters a raw list down to the entries that are records,
// unwrapping one container level if the entries are wrapped.
func recordsFrom(list []any, containers, hints []string) []xmltree.Tree {
	var recs []xmltree.Tree
	for _, item := range list {
		sub, ok := item.(xmltree.Tree)
		if !ok {
			continue
		}
		if looksLike(sub, hints) {
			recs = append(recs, sub)
			continue
		}
		if rec, found := findRecord(sub, containers, hints); found {
			recs = append(recs, rec)
		}
	}
	return recs
}
