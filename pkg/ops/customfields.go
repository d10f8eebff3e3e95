package ops

import (
	"strconv"
	"strings"

	"github.com/flowbridge/plunet/pkg/entity"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/soap"
)

// CustomFieldsService is the service path for property and text module
// operations.
const CustomFieldsService = "DataCustomFields30"

// setPropertyBody serializes setPropertyValueList: scalar parameters
// in order, then one repeated tag per selected value ID.
func setPropertyBody(op executor.Operation, params executor.Params, token string) (string, error) {
	var b strings.Builder
	b.WriteString(sessionTag(token))
	writeParam(&b, "PropertyNameEnglish", params)
	writeParam(&b, "PropertyUsageArea", params)
	writeParam(&b, "MainID", params)
	for _, id := range intList(params["PropertyValueList"]) {
		b.WriteString("<PropertyValueList>" + strconv.Itoa(id) + "</PropertyValueList>")
	}
	return b.String(), nil
}

func writeParam(b *strings.Builder, name string, params executor.Params) {
	v, ok := params[name]
	if !ok {
		return
	}
	s := soap.ParamValue(v, name, nil)
	if s == "" {
		return
	}
	b.WriteString("<" + name + ">" + soap.EscapeXML(s) + "</" + name + ">")
}

// intList coerces the loose encodings hosts send for ID lists.
func intList(v any) []int {
	switch val := v.(type) {
	case []int:
		return val
	case int:
		return []int{val}
	case []any:
		var out []int
		for _, item := range val {
			switch n := item.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			case string:
				if parsed, err := strconv.Atoi(n); err == nil {
					out = append(out, parsed)
				}
			}
		}
		return out
	}
	return nil
}

func init() {
	register(
		executor.Operation{
			Name:       "getProperty",
			Service:    CustomFieldsService,
			ParamOrder: []string{"PropertyNameEnglish", "PropertyUsageArea", "MainID"},
			Parse:      func(raw string) any { return entity.AsProperty(raw) },
		},
		executor.Operation{
			Name:      "setPropertyValueList",
			Service:   CustomFieldsService,
			BuildBody: setPropertyBody,
		},
		executor.Operation{
			Name:       "getTextmodule",
			Service:    CustomFieldsService,
			ParamOrder: []string{"Flag", "TextModuleUsageArea", "MainID", "languageCode"},
			Parse:      func(raw string) any { return entity.AsTextModule(raw) },
		},
		executor.Operation{
			Name:       "setTextmodule",
			Service:    CustomFieldsService,
			ParamOrder: []string{"Flag", "TextModuleUsageArea", "StringValue", "MainID", "languageCode"},
		},
	)
}
