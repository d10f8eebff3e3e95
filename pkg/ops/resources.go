package ops

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/entity"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// ResourceService is the service path for resource operations.
const ResourceService = "DataResource30"

var resourceINFields = []string{
	"resourceID", "academicTitle", "costCenter", "currency", "email",
	"externalID", "fax", "formOfAddress", "fullName", "mobilePhone",
	"name1", "name2", "opening", "phone", "resourceType", "skypeID",
	"status", "userId", "website", "workingStatus",
}

func resourceIN(withNullFlag bool) func(executor.Operation, executor.Params, string) (string, error) {
	return func(op executor.Operation, params executor.Params, token string) (string, error) {
		var b strings.Builder
		b.WriteString(sessionTag(token))
		b.WriteString(executor.NestedBody("ResourceIN", resourceINFields, params, nil))
		if withNullFlag {
			b.WriteString(boolTag("enableNullOrEmptyValues", params))
		}
		return b.String(), nil
	}
}

func parseResource(raw string) any {
	r, _ := entity.ParseResource(xmltree.Parse(raw))
	return r
}

func parseResourceList(raw string) any {
	return entity.ParseResourceList(xmltree.Parse(raw))
}

func init() {
	register(
		executor.Operation{
			Name:       "getResourceObject",
			Service:    ResourceService,
			ParamOrder: []string{"resourceID"},
			Parse:      parseResource,
		},
		executor.Operation{
			Name:       "getAllResourceObjects",
			Service:    ResourceService,
			ParamOrder: []string{"WorkingStatus", "Status"},
			Parse:      parseResourceList,
		},
		executor.Operation{
			Name:      "update",
			Service:   ResourceService,
			BuildBody: resourceIN(true),
		},
		executor.Operation{
			Name:       "getFullName",
			Service:    ResourceService,
			ParamOrder: []string{"resourceID"},
			Parse:      func(raw string) any { return xmltree.AsString(raw) },
		},
		executor.Operation{
			Name:       "seekByExternalID",
			Service:    ResourceService,
			ParamOrder: []string{"ExternalID"},
			Parse:      func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:       "getPricelists",
			Service:    ResourceService,
			ParamOrder: []string{"resourceID"},
			Parse: func(raw string) any {
				return entity.ParsePricelistList(xmltree.Parse(raw))
			},
		},
	)
}
