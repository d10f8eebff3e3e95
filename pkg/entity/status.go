package entity

// Status label tables for the numeric status codes the remote API
// returns on records. The numeric code is always retained alongside
// the mapped label (StatusID on the records), so an unmapped code
// still reaches the caller.

var customerStatusLabels = map[int]string{
	1: "ACTIVE",
	2: "NOT_ACTIVE",
	3: "NEW",
	4: "BLOCKED",
	5: "ALSO_RESOURCE",
	6: "DELETION_REQUESTED",
}

var resourceStatusLabels = map[int]string{
	1: "ACTIVE",
	2: "NOT_ACTIVE",
	3: "NEW",
	4: "BLOCKED",
	5: "PROBATION",
	6: "QUALIFIED",
	7: "DELETION_REQUESTED",
}

var projectStatusLabels = map[int]string{
	1: "ACTIVE",
	2: "COMPLETED",
	3: "ARCHIVED",
	4: "QUOTE_MOVED_TO_ORDER",
	5: "CANCELED",
}

var jobStatusLabels = map[int]string{
	0: "IN_PREPARATION",
	1: "IN_PROGRESS",
	2: "DELIVERED",
	3: "APPROVED",
	4: "INVOICED",
	5: "CANCELED",
}

var itemStatusLabels = map[int]string{
	1: "IN_PREPARATION",
	2: "IN_PROGRESS",
	3: "DELIVERED",
	4: "APPROVED",
	5: "INVOICED",
	6: "CANCELED",
}

// statusLabel maps a numeric code through a label table, falling back
// to "UNKNOWN" for codes the table does not cover.
func statusLabel(labels map[int]string, code int) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return "UNKNOWN"
}
