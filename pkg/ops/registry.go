package ops

import (
	"sort"
	"strings"

	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/soap"
)

// registry maps "Service.operation" to its descriptor.
var registry = map[string]executor.Operation{}

func register(operations ...executor.Operation) {
	for _, op := range operations {
		registry[op.Service+"."+op.Name] = op
	}
}

// Lookup resolves an operation. A qualified "Service.operation" name
// matches exactly; a bare operation name matches when it is unambiguous
// across services.
func Lookup(name string) (executor.Operation, bool) {
	if op, ok := registry[name]; ok {
		return op, true
	}
	var found executor.Operation
	matches := 0
	for key, op := range registry {
		if strings.HasSuffix(key, "."+name) {
			found = op
			matches++
		}
	}
	if matches == 1 {
		return found, true
	}
	return executor.Operation{}, false
}

// Names returns all registered qualified names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for key := range registry {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// All returns every registered descriptor.
func All() []executor.Operation {
	operations := make([]executor.Operation, 0, len(registry))
	for _, name := range Names() {
		operations = append(operations, registry[name])
	}
	return operations
}

// sessionTag renders the session token parameter.
func sessionTag(token string) string {
	return "<" + executor.SessionParam + ">" + soap.EscapeXML(token) + "</" + executor.SessionParam + ">"
}

// boolTag renders a boolean flag parameter in the "true"/"false" form
// the nested-object operations expect, defaulting to false when the
// caller omitted it.
func boolTag(name string, params executor.Params) string {
	value := "false"
	switch v := params[name].(type) {
	case bool:
		if v {
			value = "true"
		}
	case string:
		if v == "true" || v == "1" {
			value = "true"
		}
	case int:
		if v != 0 {
			value = "true"
		}
	}
	return "<" + name + ">" + value + "</" + name + ">"
}
