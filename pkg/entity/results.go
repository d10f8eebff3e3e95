package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// PropertyResult pairs a parsed property with the response status.
type PropertyResult struct {
	xmltree.ResultBase
	Value *Property
}

// AsProperty parses raw XML as a property response. A missing payload
// yields a nil Value; the status fields are always populated.
func AsProperty(raw string) PropertyResult {
	t := xmltree.Parse(raw)
	res := PropertyResult{ResultBase: xmltree.ExtractResultBase(t)}
	if p, ok := ParseProperty(t); ok {
		res.Value = p
	}
	return res
}

// TextModuleResult pairs a parsed text module with the response status.
type TextModuleResult struct {
	xmltree.ResultBase
	Value *TextModule
}

// AsTextModule parses raw XML as a text module response.
func AsTextModule(raw string) TextModuleResult {
	t := xmltree.Parse(raw)
	res := TextModuleResult{ResultBase: xmltree.ExtractResultBase(t)}
	if tm, ok := ParseTextModule(t); ok {
		res.Value = tm
	}
	return res
}
