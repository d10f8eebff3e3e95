package ops

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/entity"
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// JobService is the service path for job operations.
const JobService = "DataJob30"

var jobINFields = []string{
	"jobID", "contactPersonID", "dueDate", "itemID", "projectID",
	"projectType", "startDate", "status",
}

func jobIN(withNullFlag bool) func(executor.Operation, executor.Params, string) (string, error) {
	return func(op executor.Operation, params executor.Params, token string) (string, error) {
		var b strings.Builder
		b.WriteString(sessionTag(token))
		b.WriteString(executor.NestedBody("JobIN", jobINFields, params, nil))
		if withNullFlag {
			b.WriteString(boolTag("enableNullOrEmptyValues", params))
		}
		// The job type travels outside the JobIN object.
		writeParam(&b, "jobTypeAbbrevation", params)
		return b.String(), nil
	}
}

func parseJob(raw string) any {
	j, _ := entity.ParseJob(xmltree.Parse(raw))
	return j
}

func parseJobList(raw string) any {
	return entity.ParseJobList(xmltree.Parse(raw))
}

func init() {
	register(
		executor.Operation{
			Name:       "getJob_ForView",
			Service:    JobService,
			ParamOrder: []string{"jobID", "projectType"},
			Parse:      parseJob,
		},
		executor.Operation{
			Name:       "getJobListOfItem_ForView",
			Service:    JobService,
			ParamOrder: []string{"itemID", "projectType"},
			Parse:      parseJobList,
		},
		executor.Operation{
			Name:      "insert3",
			Service:   JobService,
			BuildBody: jobIN(false),
			Parse:     func(raw string) any { return xmltree.AsInteger(raw) },
		},
		executor.Operation{
			Name:      "update",
			Service:   JobService,
			BuildBody: jobIN(true),
		},
		executor.Operation{
			Name:       "deleteJob",
			Service:    JobService,
			ParamOrder: []string{"jobID", "projectType"},
		},
		executor.Operation{
			Name:       "setJobStatus",
			Service:    JobService,
			ParamOrder: []string{"projectType", "jobID", "status"},
		},
		executor.Operation{
			Name:       "getDeliveryDate",
			Service:    JobService,
			ParamOrder: []string{"jobID", "projectType"},
			Parse:      func(raw string) any { return xmltree.AsDate(raw) },
		},
		executor.Operation{
			Name:       "getPriceLine_List",
			Service:    JobService,
			ParamOrder: []string{"jobID", "projectType"},
			Parse: func(raw string) any {
				return entity.ParsePriceLineList(xmltree.Parse(raw))
			},
		},
	)
}
