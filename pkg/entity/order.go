package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// Order is a parsed order record. Dates stay in the wire format the
// server delivered them in.
type Order struct {
	OrderID            int
	CreationDate       string
	Currency           string
	CustomerContactID  int
	CustomerID         int
	DeliveryDeadline   string
	OrderClosingDate   string
	OrderDate          string
	OrderDisplayName   string
	ProjectManagerID   int
	ProjectManagerMemo string
	ProjectName        string
	Rate               float64
	RequestID          int
	Status             string
	StatusID           int
	Subject            string
	Extra              map[string]any
}

var orderFields = []string{
	"orderID", "creationDate", "currency", "customerContactID",
	"customerID", "deliveryDeadline", "orderClosingDate", "orderDate",
	"orderDisplayName", "projectManagerID", "projectManagerMemo",
	"projectName", "rate", "requestID", "status", "subject",
}

var orderHints = []string{"orderID", "orderDisplayName", "projectName", "orderDate", "customerID"}

// ParseOrder locates and coerces an order record anywhere in the tree.
func ParseOrder(t xmltree.Tree) (*Order, bool) {
	rec, ok := findRecord(t, []string{"order"}, orderHints)
	if !ok {
		return nil, false
	}
	return orderFrom(rec), true
}

// ParseOrderList locates a list of order records.
func ParseOrderList(t xmltree.Tree) []*Order {
	recs := findRecordList(t, []string{"order"}, orderHints)
	orders := make([]*Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, orderFrom(rec))
	}
	return orders
}

func orderFrom(rec xmltree.Tree) *Order {
	o := &Order{Extra: extraFields(rec, orderFields)}
	o.OrderID, _ = fieldInt(rec, "orderID")
	o.CreationDate, _ = fieldText(rec, "creationDate")
	o.Currency, _ = fieldText(rec, "currency")
	o.CustomerContactID, _ = fieldInt(rec, "customerContactID")
	o.CustomerID, _ = fieldInt(rec, "customerID")
	o.DeliveryDeadline, _ = fieldText(rec, "deliveryDeadline")
	o.OrderClosingDate, _ = fieldText(rec, "orderClosingDate")
	o.OrderDate, _ = fieldText(rec, "orderDate")
	o.OrderDisplayName, _ = fieldText(rec, "orderDisplayName")
	o.ProjectManagerID, _ = fieldInt(rec, "projectManagerID")
	o.ProjectManagerMemo, _ = fieldText(rec, "projectManagerMemo")
	o.ProjectName, _ = fieldText(rec, "projectName")
	o.Rate, _ = fieldNumber(rec, "rate")
	o.RequestID, _ = fieldInt(rec, "requestID")
	o.Subject, _ = fieldText(rec, "subject")
	if code, ok := fieldInt(rec, "status"); ok {
		o.StatusID = code
		o.Status = statusLabel(projectStatusLabels, code)
	}
	return o
}
