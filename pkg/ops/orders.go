package ops

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/entity"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// OrderService is the service path for order operations.
const OrderService = "DataOrder30"

var orderINFields = []string{
	"orderID", "currency", "customerContactID", "customerID",
	"deliveryDeadline", "orderDate", "projectManagerID",
	"projectManagerMemo", "projectName", "rate", "referenceNumber",
	"subject",
}

func orderIN(withNullFlag bool) func(executor.Operation, executor.Params, string) (string, error) {
	return func(op executor.Operation, params executor.Params, token string) (string, error) {
		var b strings.Builder
		b.WriteString(sessionTag(token))
		b.WriteString(executor.NestedBody("OrderIN", orderINFields, params, nil))
		if withNullFlag {
			b.WriteString(boolTag("enableNullOrEmptyValues", params))
		}
		return b.String(), nil
	}
}

func parseOrder(raw string) any {
	o, _ := entity.ParseOrder(xmltree.Parse(raw))
	return o
}

func init() {
	register(
		executor.Operation{
			Name:       "getOrderObject",
			Service:    OrderService,
			ParamOrder: []string{"orderID"},
			Parse:      parseOrder,
		},
		executor.Operation{
			Name:      "insert2",
			Service:   OrderService,
			BuildBody: orderIN(false),
			Parse:     func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:      "update",
			Service:   OrderService,
			BuildBody: orderIN(true),
		},
		executor.Operation{
			Name:       "delete",
			Service:    OrderService,
			ParamOrder: []string{"orderID"},
		},
		// The remote side reports "no value set" for deadline and
		// closing date through error-shaped status codes.
		executor.Operation{
			Name:              "getDeliveryDeadline",
			Service:           OrderService,
			ParamOrder:        []string{"orderID"},
			BenignStatusCodes: []int{-57, 7028},
			Parse:             func(raw string) any { return xmltree.AsDate(raw) },
		},
		executor.Operation{
			Name:              "getOrderClosingDate",
			Service:           OrderService,
			ParamOrder:        []string{"orderID"},
			BenignStatusCodes: []int{-57, 7028},
			Parse:             func(raw string) any { return xmltree.AsDate(raw) },
		},
		executor.Operation{
			Name:       "getOrderNo_for_View",
			Service:    OrderService,
			ParamOrder: []string{"orderID"},
			Parse:      func(raw string) any { return xmltree.AsString(raw) },
		},
		executor.Operation{
			Name:       "getProjectmanagerID",
			Service:    OrderService,
			ParamOrder: []string{"orderID"},
			Parse:      func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:       "setProjectName",
			Service:    OrderService,
			ParamOrder: []string{"projectName", "orderID"},
		},
	)
}
