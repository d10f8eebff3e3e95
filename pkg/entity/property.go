package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// Property is a parsed custom property record.
type Property struct {
	PropertyNameEnglish     string
	AvailableValues         []int
	MainPropertyNameEnglish string
	PropertyType            int
	SelectedValues          []int
	Extra                   map[string]any
}

var propertyFields = []string{
	"propertyNameEnglish", "avaliablePropertyValueIDList",
	"availablePropertyValueIDList", "mainPropertyNameEnglish",
	"propertyType", "selectedPropertyValueIDList", "selectedPropertyValueID",
}

var propertyHints = []string{"propertyNameEnglish", "propertyType", "selectedPropertyValueIDList", "selectedPropertyValueID"}

// ParseProperty locates and coerces a property record anywhere in the
// tree. The remote API misspells "available" in the value-ID list key,
// so both spellings are accepted.
func ParseProperty(t xmltree.Tree) (*Property, bool) {
	rec, ok := findRecord(t, []string{"property"}, propertyHints)
	if !ok {
		return nil, false
	}
	return propertyFrom(rec), true
}

// ParsePropertyList locates a list of property records.
func ParsePropertyList(t xmltree.Tree) []*Property {
	recs := findRecordList(t, []string{"property"}, propertyHints)
	props := make([]*Property, 0, len(recs))
	for _, rec := range recs {
		props = append(props, propertyFrom(rec))
	}
	return props
}

func propertyFrom(rec xmltree.Tree) *Property {
	p := &Property{Extra: extraFields(rec, propertyFields)}
	p.PropertyNameEnglish, _ = fieldText(rec, "propertyNameEnglish")
	p.MainPropertyNameEnglish, _ = fieldText(rec, "mainPropertyNameEnglish")
	p.PropertyType, _ = fieldInt(rec, "propertyType")
	for _, name := range []string{"avaliablePropertyValueIDList", "availablePropertyValueIDList"} {
		for _, key := range keyVariants(name) {
			if list, ok := rec.List(key); ok {
				p.AvailableValues = intsFrom(list)
			}
		}
		if p.AvailableValues != nil {
			break
		}
	}
	for _, key := range keyVariants("selectedPropertyValueIDList") {
		if list, ok := rec.List(key); ok {
			p.SelectedValues = intsFrom(list)
			break
		}
	}
	if p.SelectedValues == nil {
		if n, ok := fieldInt(rec, "selectedPropertyValueID"); ok {
			p.SelectedValues = []int{n}
		}
	}
	return p
}

// TextModule is a parsed text module record.
type TextModule struct {
	Flag            string
	TextModuleLabel string
	TextModuleType  int
	StringValue     string
	SelectedValues  []string
	AvailableValues []string
	Extra           map[string]any
}

var textModuleFields = []string{
	"flag", "textModuleLabel", "textModuleType", "stringValue",
	"selectedValues", "availableValues",
}

var textModuleHints = []string{"flag", "textModuleLabel", "textModuleType", "stringValue"}

// ParseTextModule locates and coerces a text module record.
func ParseTextModule(t xmltree.Tree) (*TextModule, bool) {
	rec, ok := findRecord(t, []string{"textmodule", "textModule"}, textModuleHints)
	if !ok {
		return nil, false
	}
	return textModuleFrom(rec), true
}

func textModuleFrom(rec xmltree.Tree) *TextModule {
	tm := &TextModule{Extra: extraFields(rec, textModuleFields)}
	tm.Flag, _ = fieldText(rec, "flag")
	tm.TextModuleLabel, _ = fieldText(rec, "textModuleLabel")
	tm.TextModuleType, _ = fieldInt(rec, "textModuleType")
	tm.StringValue, _ = fieldText(rec, "stringValue")
	for _, key := range keyVariants("selectedValues") {
		if list, ok := rec.List(key); ok {
			tm.SelectedValues = stringsFrom(list)
			break
		}
	}
	for _, key := range keyVariants("availableValues") {
		if list, ok := rec.List(key); ok {
			tm.AvailableValues = stringsFrom(list)
			break
		}
	}
	return tm
}

// stringsFrom coerces a raw list into strings, unwrapping value
// wrapper nodes and skipping empties.
func stringsFrom(list []any) []string {
	var out []string
	for _, item := range list {
		if s, ok := xmltree.Text(item); ok {
			out = append(out, s)
			continue
		}
		sub, ok := item.(xmltree.Tree)
		if !ok {
			continue
		}
		for _, key := range []string{"string", "value", "data"} {
			if s, ok := xmltree.Text(sub[key]); ok {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
