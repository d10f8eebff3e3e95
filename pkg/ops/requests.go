package ops

import (
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// RequestService is the service path for quote-request operations.
const RequestService = "DataRequest30"

func init() {
	register(
		// A request that was converted or withdrawn answers with -24;
		// that is an empty result, not a failure.
		executor.Operation{
			Name:              "getRequestObject",
			Service:           RequestService,
			ParamOrder:        []string{"requestID"},
			BenignStatusCodes: []int{-24},
		},
		executor.Operation{
			Name:    "getAll_Requests",
			Service: RequestService,
			Parse:   func(raw string) any { return xmltree.AsIntegerList(raw) },
		},
		executor.Operation{
			Name:       "delete",
			Service:    RequestService,
			ParamOrder: []string{"requestID"},
		},
	)
}
