package models

import (
	"math"
	"strings"
)

// CaseStatus is the lifecycle state of a case
type CaseStatus string

// Case lifecycle states
const (
	CaseStatusOpen    CaseStatus = "Open"
	CaseStatusClosed  CaseStatus = "Closed"
	CaseStatusPending CaseStatus = "Pending"
)

// VoucherStatus is the billing lifecycle state of a case with respect to the payer
type VoucherStatus string

// Voucher states
const (
	VoucherMissing         VoucherStatus = "Missing"
	VoucherOpen            VoucherStatus = "Open"
	VoucherSubmitted       VoucherStatus = "Submitted"
	VoucherPending         VoucherStatus = "Pending"
	VoucherPaid            VoucherStatus = "Paid"
	VoucherIntendNotToBill VoucherStatus = "Intend Not to Bill"
)

// Case holds the structure for the cases collection in mongo. One case is one
// investigative matter tracked end to end. Dates are calendar-date strings in
// YYYY-MM-DD form with no time component.
type Case struct {
	ID           string  `json:"id" bson:"_id"`
	CaseNumber   string  `json:"caseNumber" bson:"caseNumber"`
	JudgeName    string  `json:"judgeName" bson:"judgeName"`
	Jurisdiction *string `json:"jurisdiction,omitempty" bson:"jurisdiction,omitempty"`
	AssignedTo   *string `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"` // investigator reference
	AttorneyName string  `json:"attorneyName" bson:"attorneyName"`

	DefendantFirstName string `json:"defendantFirstName" bson:"defendantFirstName"`
	DefendantLastName  string `json:"defendantLastName" bson:"defendantLastName"`

	Status             CaseStatus    `json:"status" bson:"status"`
	VoucherStatus      VoucherStatus `json:"voucherStatus" bson:"voucherStatus"`
	IsRetainedServices bool          `json:"isRetainedServices" bson:"isRetainedServices"`
	NeedsIntake        bool          `json:"needsIntake" bson:"needsIntake"`

	DateOpened           string `json:"dateOpened" bson:"dateOpened"`
	DateClosed           string `json:"dateClosed,omitempty" bson:"dateClosed,omitempty"`
	NextCourtDate        string `json:"nextCourtDate,omitempty" bson:"nextCourtDate,omitempty"`
	NextEventDescription string `json:"nextEventDescription" bson:"nextEventDescription"`

	DatePaid   string  `json:"datePaid,omitempty" bson:"datePaid,omitempty"`
	AmountPaid float64 `json:"amountPaid" bson:"amountPaid"`

	DispositionNotes string `json:"dispositionNotes" bson:"dispositionNotes"`

	Activities     []Activity      `json:"activities" bson:"activities"`
	EvidenceItems  []EvidenceItem  `json:"evidenceItems" bson:"evidenceItems"`
	Communications []Communication `json:"communications" bson:"communications"`
}

// NormalizeStatus maps a raw status string onto the lifecycle enum. "closed"
// and "pending" match case-insensitively; everything else, including empty
// input, is treated as Open.
func NormalizeStatus(raw string) CaseStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "closed":
		return CaseStatusClosed
	case "pending":
		return CaseStatusPending
	default:
		return CaseStatusOpen
	}
}

// Normalize coerces a freshly fetched case into well-formed shape. Runs once
// at snapshot-load time so downstream consumers never re-default fields.
func (c *Case) Normalize() {
	c.Status = NormalizeStatus(string(c.Status))
	if c.VoucherStatus == "" {
		c.VoucherStatus = VoucherMissing
	}
	if math.IsNaN(c.AmountPaid) || c.AmountPaid < 0 {
		c.AmountPaid = 0
	}
	if c.Activities == nil {
		c.Activities = []Activity{}
	}
	if c.EvidenceItems == nil {
		c.EvidenceItems = []EvidenceItem{}
	}
	if c.Communications == nil {
		c.Communications = []Communication{}
	}
	for i := range c.Activities {
		if math.IsNaN(c.Activities[i].Hours) || c.Activities[i].Hours < 0 {
			c.Activities[i].Hours = 0
		}
		if c.Activities[i].CaseID == "" {
			c.Activities[i].CaseID = c.ID
		}
	}
}

// DefendantName renders the registry display name, falling back to the
// placeholder rendering for cases still awaiting intake.
func (c Case) DefendantName() string {
	last := c.DefendantLastName
	first := c.DefendantFirstName
	if last == "" {
		last = "NEW"
	}
	if first == "" {
		first = "CASE"
	}
	return last + ", " + first
}
