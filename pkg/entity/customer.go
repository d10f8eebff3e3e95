package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// Customer is a parsed customer record. Fields the parser does not
// recognize are preserved in Extra.
type Customer struct {
	CustomerID    int
	AcademicTitle string
	CostCenter    string
	Currency      string
	Email         string
	ExternalID    string
	Fax           string
	FormOfAddress int
	FullName      string
	MobilePhone   string
	Name1         string
	Name2         string
	Opening       string
	Phone         string
	SkypeID       string
	Status        string
	StatusID      int
	UserID        int
	Website       string
	Extra         map[string]any
}

var customerFields = []string{
	"customerID", "academicTitle", "costCenter", "currency", "email",
	"externalID", "fax", "formOfAddress", "fullName", "mobilePhone",
	"name1", "name2", "opening", "phone", "skypeID", "status",
	"userId", "website",
}

var customerHints = []string{"customerID", "fullName", "name1", "status", "email"}

// ParseCustomer locates and coerces a customer record anywhere in the
// tree. Reports false when no customer-shaped node exists.
func ParseCustomer(t xmltree.Tree) (*Customer, bool) {
	rec, ok := findRecord(t, []string{"customer"}, customerHints)
	if !ok {
		return nil, false
	}
	return customerFrom(rec), true
}

// ParseCustomerList locates a list of customer records, treating a
// lone record as a one-element list.
func ParseCustomerList(t xmltree.Tree) []*Customer {
	recs := findRecordList(t, []string{"customer"}, customerHints)
	customers := make([]*Customer, 0, len(recs))
	for _, rec := range recs {
		customers = append(customers, customerFrom(rec))
	}
	return customers
}

func customerFrom(rec xmltree.Tree) *Customer {
	c := &Customer{Extra: extraFields(rec, customerFields)}
	c.CustomerID, _ = fieldInt(rec, "customerID")
	c.AcademicTitle, _ = fieldText(rec, "academicTitle")
	c.CostCenter, _ = fieldText(rec, "costCenter")
	c.Currency, _ = fieldText(rec, "currency")
	c.Email, _ = fieldText(rec, "email")
	c.ExternalID, _ = fieldText(rec, "externalID")
	c.Fax, _ = fieldText(rec, "fax")
	c.FormOfAddress, _ = fieldInt(rec, "formOfAddress")
	c.FullName, _ = fieldText(rec, "fullName")
	c.MobilePhone, _ = fieldText(rec, "mobilePhone")
	c.Name1, _ = fieldText(rec, "name1")
	c.Name2, _ = fieldText(rec, "name2")
	c.Opening, _ = fieldText(rec, "opening")
	c.Phone, _ = fieldText(rec, "phone")
	c.SkypeID, _ = fieldText(rec, "skypeID")
	c.UserID, _ = fieldInt(rec, "userId")
	c.Website, _ = fieldText(rec, "website")
	if code, ok := fieldInt(rec, "status"); ok {
		c.StatusID = code
		c.Status = statusLabel(customerStatusLabels, code)
	}
	return c
}
