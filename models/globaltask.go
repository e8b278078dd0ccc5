package models

// TaskPriority is the urgency level of a global task
type TaskPriority string

// Task priorities
const (
	TaskPriorityLow      TaskPriority = "Low"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityCritical TaskPriority = "Critical"
)

// GlobalTask holds the structure for the global_tasks collection in mongo.
// The defendantName, attorneyName and caseNumber fields are point-in-time
// copies snapshotted at creation, not foreign keys; they are never kept in
// sync with the referenced case. CaseID is a weak reference: a task may
// outlive the case it points at, and case-scoped views drop such tasks.
type GlobalTask struct {
	ID              string       `json:"id" bson:"_id"`
	TaskDate        string       `json:"taskDate" bson:"taskDate"`
	DefendantName   string       `json:"defendantName" bson:"defendantName"`
	AttorneyName    string       `json:"attorneyName" bson:"attorneyName"`
	CaseNumber      string       `json:"caseNumber" bson:"caseNumber"`
	TaskDescription string       `json:"taskDescription" bson:"taskDescription"`
	DueDate         string       `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Priority        TaskPriority `json:"priority" bson:"priority"`
	Completed       bool         `json:"completed" bson:"completed"`
	NeedsIntake     bool         `json:"needsIntake" bson:"needsIntake"`
	CaseID          string       `json:"caseId" bson:"caseId"`
}
