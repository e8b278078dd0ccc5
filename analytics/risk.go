package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/brentis/investigator-api/models"
)

// Detector thresholds.
const (
	ColdStartMinDays      = 14 // intake-only ledger older than this has never really started
	StagnantThresholdDays = 45 // no activity of any kind for longer than this is idle
	CapacityHoursPerDay   = 12 // sustainable daily hour ceiling across all cases
	UrgentWindowDays      = 30 // critical hearings inside this window are urgent
)

// criticalEventTerms is the fixed vocabulary of hearing types that make an
// upcoming court date urgent. Matched case-insensitively as substrings of
// nextEventDescription.
var criticalEventTerms = []string{
	"trial readiness",
	"jury trial",
	"non-jury trial",
	"motion hearing",
	"sentencing",
}

// EvidenceAlert is an outstanding evidence request annotated with its case.
type EvidenceAlert struct {
	models.EvidenceItem
	CaseID        string `json:"caseId"`
	DefendantName string `json:"defendantName"`
	AttorneyName  string `json:"attorneyName"`
}

// EvidenceAlerts returns every evidence item that was requested before today
// and has not been received, oldest request first. A request date that does
// not parse carries no signal and never alerts.
func EvidenceAlerts(valid []models.Case, today time.Time) []EvidenceAlert {
	alerts := []EvidenceAlert{}
	for _, c := range valid {
		for _, e := range c.EvidenceItems {
			if e.DateReceived != "" {
				continue
			}
			requested, ok := ParseDay(e.DateRequested)
			if !ok || !requested.Before(Day(today)) {
				continue
			}
			alerts = append(alerts, EvidenceAlert{
				EvidenceItem:  e,
				CaseID:        c.ID,
				DefendantName: c.DefendantName(),
				AttorneyName:  c.AttorneyName,
			})
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DateRequested < alerts[j].DateRequested
	})
	return alerts
}

// OverdueCourts returns open cases whose next court date has already passed,
// most overdue first. Unparseable court dates carry no signal.
func OverdueCourts(valid []models.Case, today time.Time) []models.Case {
	out := []models.Case{}
	for _, c := range valid {
		if c.Status != models.CaseStatusOpen {
			continue
		}
		court, ok := ParseDay(c.NextCourtDate)
		if ok && court.Before(Day(today)) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextCourtDate < out[j].NextCourtDate
	})
	return out
}

// UrgentPreTrials returns open cases with a critical hearing type scheduled
// within the urgency window, soonest first.
func UrgentPreTrials(valid []models.Case, today time.Time) []models.Case {
	out := []models.Case{}
	for _, c := range valid {
		if c.Status != models.CaseStatusOpen {
			continue
		}
		court, ok := ParseDay(c.NextCourtDate)
		if !ok {
			continue
		}
		daysUntil := int(court.Sub(Day(today)) / (24 * time.Hour))
		if daysUntil < 0 || daysUntil > UrgentWindowDays {
			continue
		}
		if !hasCriticalEvent(c.NextEventDescription) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextCourtDate < out[j].NextCourtDate
	})
	return out
}

func hasCriticalEvent(description string) bool {
	lower := strings.ToLower(description)
	for _, term := range criticalEventTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// ColdStartCase is a case that has accrued only intake-class activity.
type ColdStartCase struct {
	models.Case
	DaysSinceNew int `json:"daysSinceNew"`
}

// ColdStarts returns open cases whose entire ledger is intake-class work
// (codes NEW and SU), with at least one NEW entry old enough to matter.
// Age is measured from the earliest NEW activity: the start of the case, not
// the end of its activity, which is what Stagnant measures instead.
func ColdStarts(valid []models.Case, today time.Time) []ColdStartCase {
	out := []ColdStartCase{}
	for _, c := range valid {
		if c.Status != models.CaseStatusOpen || len(c.Activities) == 0 {
			continue
		}
		earliestNew := ""
		intakeOnly := true
		for _, a := range c.Activities {
			if a.Code != models.ActivityCodeNew && a.Code != models.ActivityCodeSetup {
				intakeOnly = false
				break
			}
			if a.Code == models.ActivityCodeNew && (earliestNew == "" || a.Date < earliestNew) {
				earliestNew = a.Date
			}
		}
		if !intakeOnly || earliestNew == "" {
			continue
		}
		age := DaysSince(today, earliestNew)
		if age >= ColdStartMinDays {
			out = append(out, ColdStartCase{Case: c, DaysSinceNew: age})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysSinceNew > out[j].DaysSinceNew
	})
	return out
}

// StagnantCase is a case with no activity of any kind for an extended period.
type StagnantCase struct {
	models.Case
	StagnantDays int `json:"stagnantDays"`
}

// StagnantRisks returns open cases whose most recent activity (or dateOpened
// when the ledger is empty) is older than the stagnation threshold, longest
// idle first. A case may be both cold-started and stagnant; the two answer
// different questions and both badges are kept.
func StagnantRisks(valid []models.Case, today time.Time) []StagnantCase {
	out := []StagnantCase{}
	for _, c := range valid {
		if c.Status != models.CaseStatusOpen {
			continue
		}
		refDate := ""
		for _, a := range c.Activities {
			if a.Date > refDate {
				refDate = a.Date
			}
		}
		if refDate == "" {
			refDate = c.DateOpened
		}
		idle := DaysSince(today, refDate)
		if idle > StagnantThresholdDays {
			out = append(out, StagnantCase{Case: c, StagnantDays: idle})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StagnantDays > out[j].StagnantDays
	})
	return out
}

// CapacityWarning flags a date whose total logged hours exceed the
// sustainable daily ceiling.
type CapacityWarning struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"totalHours"`
}

// CapacityWarnings scans the raw workload map, most recent date first.
// Workload is a property of investigator time, so no validity filtering
// applies here.
func CapacityWarnings(workload map[string]WorkloadEntry) []CapacityWarning {
	out := []CapacityWarning{}
	for date, entry := range workload {
		if entry.TotalHours > CapacityHoursPerDay {
			out = append(out, CapacityWarning{Date: date, TotalHours: entry.TotalHours})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
