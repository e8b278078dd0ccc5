package models

// Activity is one logged, coded, hour-valued unit of investigative work,
// owned by exactly one case. The code field is a key into the activity code
// catalog maintained by the front office.
type Activity struct {
	ID          string  `json:"id" bson:"id"`
	CaseID      string  `json:"caseId" bson:"caseId"`
	Date        string  `json:"date" bson:"date"` // YYYY-MM-DD
	Code        string  `json:"code" bson:"code"`
	Description string  `json:"description" bson:"description"`
	Hours       float64 `json:"hours" bson:"hours"`
}

// Intake-class activity codes. A case whose entire ledger is intake-class
// work has never really started.
const (
	ActivityCodeNew   = "NEW"
	ActivityCodeSetup = "SU"
)
