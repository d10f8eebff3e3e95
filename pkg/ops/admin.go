package ops

import (
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// AdminService is the service path for system-wide lookups.
const AdminService = "DataAdmin30"

func init() {
	register(
		executor.Operation{
			Name:       "getAvailableLanguages",
			Service:    AdminService,
			ParamOrder: []string{"languageCode"},
			Parse:      func(raw string) any { return xmltree.AsStringList(raw) },
		},
		executor.Operation{
			Name:       "getAvailableCountries",
			Service:    AdminService,
			ParamOrder: []string{"languageCode"},
			Parse:      func(raw string) any { return xmltree.AsStringList(raw) },
		},
		executor.Operation{
			Name:    "getAvailableServices",
			Service: AdminService,
			Parse:   func(raw string) any { return xmltree.AsStringList(raw) },
		},
		executor.Operation{
			Name:    "getCompanyCodeList",
			Service: AdminService,
			Parse:   func(raw string) any { return xmltree.AsIntegerList(raw) },
		},
	)
}
