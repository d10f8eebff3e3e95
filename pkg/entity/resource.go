package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// Resource is a parsed resource (translator/vendor) record.
type Resource struct {
	ResourceID    int
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
	ResourceType  int
	SkypeID       string
	Status        string
	StatusID      int
	UserID        int
	Website       string
	WorkingStatus int
	Extra         map[string]any
}

var resourceFields = []string{
	"resourceID", "academicTitle", "costCenter", "currency", "email",
	"externalID", "fax", "formOfAddress", "fullName", "mobilePhone",
	"name1", "name2", "opening", "phone", "resourceType", "skypeID",
	"status", "userId", "website", "workingStatus",
}

var resourceHints = []string{"resourceID", "fullName", "name1", "workingStatus", "resourceType"}

// ParseResource locates and coerces a resource record anywhere in the tree.
func ParseResource(t xmltree.Tree) (*Resource, bool) {
	rec, ok := findRecord(t, []string{"resource"}, resourceHints)
	if !ok {
		return nil, false
	}
	return resourceFrom(rec), true
}

// ParseResourceList locates a list of resource records.
func ParseResourceList(t xmltree.Tree) []*Resource {
	recs := findRecordList(t, []string{"resource"}, resourceHints)
	resources := make([]*Resource, 0, len(recs))
	for _, rec := range recs {
		resources = append(resources, resourceFrom(rec))
	}
	return resources
}

func resourceFrom(rec xmltree.Tree) *Resource {
	r := &Resource{Extra: extraFields(rec, resourceFields)}
	r.ResourceID, _ = fieldInt(rec, "resourceID")
	r.AcademicTitle, _ = fieldText(rec, "academicTitle")
	r.CostCenter, _ = fieldText(rec, "costCenter")
	r.Currency, _ = fieldText(rec, "currency")
	r.Email, _ = fieldText(rec, "email")
	r.ExternalID, _ = fieldText(rec, "externalID")
	r.Fax, _ = fieldText(rec, "fax")
	r.FormOfAddress, _ = fieldInt(rec, "formOfAddress")
	r.FullName, _ = fieldText(rec, "fullName")
	r.MobilePhone, _ = fieldText(rec, "mobilePhone")
	r.Name1, _ = fieldText(rec, "name1")
	r.Name2, _ = fieldText(rec, "name2")
	r.Opening, _ = fieldText(rec, "opening")
	r.Phone, _ = fieldText(rec, "phone")
	r.ResourceType, _ = fieldInt(rec, "resourceType")
	r.SkypeID, _ = fieldText(rec, "skypeID")
	r.UserID, _ = fieldInt(rec, "userId")
	r.Website, _ = fieldText(rec, "website")
	r.WorkingStatus, _ = fieldInt(rec, "workingStatus")
	if code, ok := fieldInt(rec, "status"); ok {
		r.StatusID = code
		r.Status = statusLabel(resourceStatusLabels, code)
	}
	return r
}
