package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/brentis/investigator-api/models"
)

const dayLayout = "2006-01-02"

// caseForm is the write-path request body for creating or replacing a case.
// The engine coerces malformed snapshot data, but the write path rejects it
// up front so it never lands in the collection to begin with.
type caseForm struct {
	CaseNumber   string  `json:"caseNumber"`
	JudgeName    string  `json:"judgeName"`
	Jurisdiction *string `json:"jurisdiction,omitempty"`
	AssignedTo   *string `json:"assignedTo,omitempty"`
	AttorneyName string  `json:"attorneyName"`

	DefendantFirstName string `json:"defendantFirstName"`
	DefendantLastName  string `json:"defendantLastName"`

	Status             string `json:"status"`
	VoucherStatus      string `json:"voucherStatus"`
	IsRetainedServices bool   `json:"isRetainedServices"`
	NeedsIntake        bool   `json:"needsIntake"`

	DateOpened           string `json:"dateOpened"`
	DateClosed           string `json:"dateClosed,omitempty"`
	NextCourtDate        string `json:"nextCourtDate,omitempty"`
	NextEventDescription string `json:"nextEventDescription"`

	DatePaid   string  `json:"datePaid,omitempty"`
	AmountPaid float64 `json:"amountPaid"`

	DispositionNotes string `json:"dispositionNotes"`

	Activities     []models.Activity      `json:"activities"`
	EvidenceItems  []models.EvidenceItem  `json:"evidenceItems"`
	Communications []models.Communication `json:"communications"`
}

// Validate validates the case form
func (f caseForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.DateOpened, validation.Required, validation.Date(dayLayout)),
		validation.Field(&f.DateClosed, validation.Date(dayLayout)),
		validation.Field(&f.NextCourtDate, validation.Date(dayLayout)),
		validation.Field(&f.DatePaid, validation.Date(dayLayout)),
		validation.Field(&f.AmountPaid, validation.Min(0.0)),
	)
}

// toCase maps the validated form onto the stored record, leaving the id to the caller
func (f caseForm) toCase(id string) models.Case {
	c := models.Case{
		ID:                 id,
		CaseNumber:         f.CaseNumber,
		JudgeName:          f.JudgeName,
		Jurisdiction:       f.Jurisdiction,
		AssignedTo:         f.AssignedTo,
		AttorneyName:       f.AttorneyName,
		DefendantFirstName: f.DefendantFirstName,
		DefendantLastName:  f.DefendantLastName,

		Status:             models.NormalizeStatus(f.Status),
		VoucherStatus:      models.VoucherStatus(f.VoucherStatus),
		IsRetainedServices: f.IsRetainedServices,
		NeedsIntake:        f.NeedsIntake,

		DateOpened:           f.DateOpened,
		DateClosed:           f.DateClosed,
		NextCourtDate:        f.NextCourtDate,
		NextEventDescription: f.NextEventDescription,

		DatePaid:   f.DatePaid,
		AmountPaid: f.AmountPaid,

		DispositionNotes: f.DispositionNotes,

		Activities:     f.Activities,
		EvidenceItems:  f.EvidenceItems,
		Communications: f.Communications,
	}
	c.Normalize()
	return c
}

type activityForm struct {
	Date        string  `json:"date"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

// Validate validates the activity form
func (f activityForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Date, validation.Required, validation.Date(dayLayout)),
		validation.Field(&f.Code, validation.Required),
		validation.Field(&f.Hours, validation.Min(0.0)),
	)
}

type evidenceForm struct {
	Description   string `json:"description"`
	DateRequested string `json:"dateRequested"`
	RequestedFrom string `json:"requestedFrom"`
	DateReceived  string `json:"dateReceived,omitempty"`
	Notes         string `json:"notes"`
}

// Validate validates the evidence form
func (f evidenceForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.DateRequested, validation.Required, validation.Date(dayLayout)),
		validation.Field(&f.DateReceived, validation.Date(dayLayout)),
	)
}

type communicationForm struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Recipient string `json:"recipient"`
}

// Validate validates the communication form
func (f communicationForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Date, validation.Required, validation.Date(dayLayout)),
		validation.Field(&f.Content, validation.Required),
	)
}

// uploadSignatureForm names the case (and optionally the evidence item) an
// upload will attach to, so the signature cannot be replayed for another case.
type uploadSignatureForm struct {
	CaseID     string `json:"caseId"`
	EvidenceID string `json:"evidenceId,omitempty"`
}

// Validate validates the upload signature form
func (f uploadSignatureForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.CaseID, validation.Required),
	)
}

type taskForm struct {
	TaskDate        string `json:"taskDate"`
	DefendantName   string `json:"defendantName"`
	AttorneyName    string `json:"attorneyName"`
	CaseNumber      string `json:"caseNumber"`
	TaskDescription string `json:"taskDescription"`
	DueDate         string `json:"dueDate,omitempty"`
	Priority        string `json:"priority"`
	Completed       bool   `json:"completed"`
	NeedsIntake     bool   `json:"needsIntake"`
	CaseID          string `json:"caseId"`
}

// Validate validates the task form
func (f taskForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.TaskDescription, validation.Required),
		validation.Field(&f.TaskDate, validation.Date(dayLayout)),
		validation.Field(&f.DueDate, validation.Date(dayLayout)),
		validation.Field(&f.Priority, validation.In(
			string(models.TaskPriorityLow),
			string(models.TaskPriorityMedium),
			string(models.TaskPriorityHigh),
			string(models.TaskPriorityCritical),
		)),
	)
}

// toTask maps the validated form onto the stored record
func (f taskForm) toTask(id string) models.GlobalTask {
	priority := models.TaskPriority(f.Priority)
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	return models.GlobalTask{
		ID:              id,
		TaskDate:        f.TaskDate,
		DefendantName:   f.DefendantName,
		AttorneyName:    f.AttorneyName,
		CaseNumber:      f.CaseNumber,
		TaskDescription: f.TaskDescription,
		DueDate:         f.DueDate,
		Priority:        priority,
		Completed:       f.Completed,
		NeedsIntake:     f.NeedsIntake,
		CaseID:          f.CaseID,
	}
}
