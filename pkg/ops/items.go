package ops

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/entity"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// ItemService is the service path for item operations.
const ItemService = "DataItem30"

var itemINFields = []string{
	"itemID", "briefDescription", "comment", "deliveryDeadline",
	"projectID", "projectType", "reference", "status", "totalPrice",
}

func itemIN(withNullFlag bool) func(executor.Operation, executor.Params, string) (string, error) {
	return func(op executor.Operation, params executor.Params, token string) (string, error) {
		var b strings.Builder
		b.WriteString(sessionTag(token))
		b.WriteString(executor.NestedBody("ItemIN", itemINFields, params, nil))
		if withNullFlag {
			b.WriteString(boolTag("enableNullOrEmptyValues", params))
		}
		return b.String(), nil
	}
}

func parseItem(raw string) any {
	it, _ := entity.ParseItem(xmltree.Parse(raw))
	return it
}

func parseItemList(raw string) any {
	return entity.ParseItemList(xmltree.Parse(raw))
}

func init() {
	register(
		executor.Operation{
			Name:       "getItemObject",
			Service:    ItemService,
			ParamOrder: []string{"projectType", "itemID"},
			Parse:      parseItem,
		},
		executor.Operation{
			Name:       "getAllItemObjects",
			Service:    ItemService,
			ParamOrder: []string{"projectID", "projectType"},
			Parse:      parseItemList,
		},
		executor.Operation{
			Name:      "insert2",
			Service:   ItemService,
			BuildBody: itemIN(false),
			Parse:     func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:      "update",
			Service:   ItemService,
			BuildBody: itemIN(true),
		},
		executor.Operation{
			Name:       "delete",
			Service:    ItemService,
			ParamOrder: []string{"itemID", "projectType"},
		},
		executor.Operation{
			Name:       "getJobList",
			Service:    ItemService,
			ParamOrder: []string{"itemID", "projectType"},
			Parse:      func(raw string) any { return xmltree.AsIntegerList(raw) },
		},
	)
}
