package ops

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/entity"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// CustomerService is the service path for customer operations.
const CustomerService = "DataCustomer30"

// customerINFields is the wire order of the CustomerIN object sent by
// insert and update.
var customerINFields = []string{
	"customerID", "academicTitle", "costCenter", "currency", "email",
	"externalID", "fax", "formOfAddress", "fullName", "mobilePhone",
	"name1", "name2", "opening", "phone", "skypeID", "status",
	"userId", "website",
}

// customerIN builds the body shared by insert2 and update: session
// token, nested CustomerIN, then the null-overwrite flag.
func customerIN(withNullFlag bool) func(executor.Operation, executor.Params, string) (string, error) {
	return func(op executor.Operation, params executor.Params, token string) (string, error) {
		var b strings.Builder
		b.WriteString(sessionTag(token))
		b.WriteString(executor.NestedBody("CustomerIN", customerINFields, params, nil))
		if withNullFlag {
			b.WriteString(boolTag("enableNullOrEmptyValues", params))
		}
		return b.String(), nil
	}
}

func parseCustomer(raw string) any {
	c, _ := entity.ParseCustomer(xmltree.Parse(raw))
	return c
}

func parseCustomerList(raw string) any {
	return entity.ParseCustomerList(xmltree.Parse(raw))
}

func init() {
	register(
		executor.Operation{
			Name:       "getCustomerObject",
			Service:    CustomerService,
			ParamOrder: []string{"customerID"},
			Parse:      parseCustomer,
		},
		executor.Operation{
			Name:       "getAllCustomerObjects",
			Service:    CustomerService,
			ParamOrder: []string{"Status"},
			Parse:      parseCustomerList,
		},
		executor.Operation{
			Name:      "insert2",
			Service:   CustomerService,
			BuildBody: customerIN(false),
			Parse:     func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:      "update",
			Service:   CustomerService,
			BuildBody: customerIN(true),
		},
		executor.Operation{
			Name:       "delete",
			Service:    CustomerService,
			ParamOrder: []string{"customerID"},
		},
		executor.Operation{
			Name:       "getFullName",
			Service:    CustomerService,
			ParamOrder: []string{"customerID"},
			Parse:      func(raw string) any { return xmltree.AsString(raw) },
		},
		executor.Operation{
			Name:       "getDateOfInitialContact",
			Service:    CustomerService,
			ParamOrder: []string{"customerID"},
			Parse:      func(raw string) any { return xmltree.AsDate(raw) },
		},
		executor.Operation{
			Name:    "getAvailableAccountIDList",
			Service: CustomerService,
			Parse:   func(raw string) any { return xmltree.AsIntegerList(raw) },
		},
		executor.Operation{
			Name:       "seekByExternalID",
			Service:    CustomerService,
			ParamOrder: []string{"ExternalID"},
			Parse:      func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:       "getStatus",
			Service:    CustomerService,
			ParamOrder: []string{"customerID"},
			Parse:      func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:       "setStatus",
			Service:    CustomerService,
			ParamOrder: []string{"Status", "customerID"},
		},
	)
}
