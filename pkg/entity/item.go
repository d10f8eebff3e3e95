package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// Item is a parsed project item record.
type Item struct {
	ItemID           int
	BriefDescription string
	Comment          string
	DeliveryDeadline string
	InvoiceID        int
	JobIDList        []int
	OrderID          int
	ProjectID        int
	ProjectType      int
	SourceLanguage   string
	Status           string
	StatusID         int
	TargetLanguage   string
	TotalPrice       float64
	Extra            map[string]any
}

var itemFields = []string{
	"itemID", "briefDescription", "comment", "deliveryDeadline",
	"invoiceID", "jobIDList", "orderID", "projectID", "projectType",
	"sourceLanguage", "status", "targetLanguage", "totalPrice",
}

var itemHints = []string{"itemID", "briefDescription", "projectID", "sourceLanguage", "targetLanguage"}

// ParseItem locates and coerces an item record anywhere in the tree.
func ParseItem(t xmltree.Tree) (*Item, bool) {
	rec, ok := findRecord(t, []string{"item"}, itemHints)
	if !ok {
		return nil, false
	}
	return itemFrom(rec), true
}

// ParseItemList locates a list of item records.
func ParseItemList(t xmltree.Tree) []*Item {
	recs := findRecordList(t, []string{"item"}, itemHints)
	items := make([]*Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, itemFrom(rec))
	}
	return items
}

func itemFrom(rec xmltree.Tree) *Item {
	it := &Item{Extra: extraFields(rec, itemFields)}
	it.ItemID, _ = fieldInt(rec, "itemID")
	it.BriefDescription, _ = fieldText(rec, "briefDescription")
	it.Comment, _ = fieldText(rec, "comment")
	it.DeliveryDeadline, _ = fieldText(rec, "deliveryDeadline")
	it.InvoiceID, _ = fieldInt(rec, "invoiceID")
	it.OrderID, _ = fieldInt(rec, "orderID")
	it.ProjectID, _ = fieldInt(rec, "projectID")
	it.ProjectType, _ = fieldInt(rec, "projectType")
	it.SourceLanguage, _ = fieldText(rec, "sourceLanguage")
	it.TargetLanguage, _ = fieldText(rec, "targetLanguage")
	it.TotalPrice, _ = fieldNumber(rec, "totalPrice")
	if code, ok := fieldInt(rec, "status"); ok {
		it.StatusID = code
		it.Status = statusLabel(itemStatusLabels, code)
	}
	for _, key := range keyVariants("jobIDList") {
		if list, ok := rec.List(key); ok {
			it.JobIDList = intsFrom(list)
			break
		}
	}
	return it
}

// intsFrom coerces a raw list into integers, unwrapping integer/int
// wrapper nodes and skipping entries that do not parse.
func intsFrom(list []any) []int {
	var out []int
	for _, item := range list {
		if n, ok := xmltree.Int(item); ok {
			out = append(out, n)
			continue
		}
		sub, ok := item.(xmltree.Tree)
		if !ok {
			continue
		}
		for _, key := range []string{"integer", "int", "value"} {
			if n, ok := xmltree.Int(sub[key]); ok {
				out = append(out, n)
				break
			}
		}
	}
	return out
}
