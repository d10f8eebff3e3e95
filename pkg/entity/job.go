package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// Job is a parsed job record.
type Job struct {
	JobID             int
	CountSourceFiles  int
	CreationDate      string
	CurrencyType      int
	DeliveryDate      string
	DeliveryNote      string
	DueDate           string
	ItemID            int
	JobTypeFull       string
	JobTypeShort      string
	PriceLineList     []*PriceLine
	ProjectID         int
	ProjectType       int
	ResourceContactID int
	ResourceID        int
	StartDate         string
	Status            string
	StatusID          int
	Extra             map[string]any
}

var jobFields = []string{
	"jobID", "countSourceFiles", "creationDate", "currencyType",
	"deliveryDate", "deliveryNote", "dueDate", "itemID", "jobTypeFull",
	"jobTypeShort", "priceLineList", "projectID", "projectType",
	"resourceContactID", "resourceID", "startDate", "status",
}

var jobHints = []string{"jobID", "jobTypeFull", "jobTypeShort", "itemID", "projectID"}

// ParseJob locates and coerces a job record anywhere in the tree.
func ParseJob(t xmltree.Tree) (*Job, bool) {
	rec, ok := findRecord(t, []string{"job"}, jobHints)
	if !ok {
		return nil, false
	}
	return jobFrom(rec), true
}

// ParseJobList locates a list of job records.
func ParseJobList(t xmltree.Tree) []*Job {
	recs := findRecordList(t, []string{"job"}, jobHints)
	jobs := make([]*Job, 0, len(recs))
	for _, rec := range recs {
		jobs = append(jobs, jobFrom(rec))
	}
	return jobs
}

func jobFrom(rec xmltree.Tree) *Job {
	j := &Job{Extra: extraFields(rec, jobFields)}
	j.JobID, _ = fieldInt(rec, "jobID")
	j.CountSourceFiles, _ = fieldInt(rec, "countSourceFiles")
	j.CreationDate, _ = fieldText(rec, "creationDate")
	j.CurrencyType, _ = fieldInt(rec, "currencyType")
	j.DeliveryDate, _ = fieldText(rec, "deliveryDate")
	j.DeliveryNote, _ = fieldText(rec, "deliveryNote")
	j.DueDate, _ = fieldText(rec, "dueDate")
	j.ItemID, _ = fieldInt(rec, "itemID")
	j.JobTypeFull, _ = fieldText(rec, "jobTypeFull")
	j.JobTypeShort, _ = fieldText(rec, "jobTypeShort")
	j.ProjectID, _ = fieldInt(rec, "projectID")
	j.ProjectType, _ = fieldInt(rec, "projectType")
	j.ResourceContactID, _ = fieldInt(rec, "resourceContactID")
	j.ResourceID, _ = fieldInt(rec, "resourceID")
	j.StartDate, _ = fieldText(rec, "startDate")
	if code, ok := fieldInt(rec, "status"); ok {
		j.StatusID = code
		j.Status = statusLabel(jobStatusLabels, code)
	}
	for _, key := range keyVariants("priceLineList") {
		if list, ok := rec.List(key); ok {
			j.PriceLineList = priceLinesFrom(list)
			break
		}
	}
	return j
}
