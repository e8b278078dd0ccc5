package analytics

import (
	"sort"
	"strings"

	"github.com/brentis/investigator-api/models"
)

// LifecycleFilter restricts the registry to one lifecycle segment.
type LifecycleFilter string

// Registry lifecycle segments. The empty filter returns every case.
const (
	LifecycleActive      LifecycleFilter = "Active"
	LifecycleUnscheduled LifecycleFilter = "Unscheduled"
	LifecycleArchive     LifecycleFilter = "Archive"
)

// RegistrySort selects the third-tier comparator key.
type RegistrySort string

// Registry sort keys
const (
	SortByDefendant  RegistrySort = "Defendant"
	SortByCourtDate  RegistrySort = "Court Date"
	SortByAttorney   RegistrySort = "Attorney"
	SortByDateOpened RegistrySort = "Date Opened"
)

// placeholderNames are the reserved defendant last-name sentinels that mark a
// case as awaiting intake completion.
var placeholderNames = map[string]bool{
	"NEW CASE":   true,
	"NEW INTAKE": true,
	"NEW":        true,
	"INTAKE":     true,
	"":           true,
}

// IsPlaceholder reports whether the case's defendant last name is one of the
// reserved intake sentinels.
func IsPlaceholder(c models.Case) bool {
	return placeholderNames[strings.ToUpper(strings.TrimSpace(c.DefendantLastName))]
}

// IsValidCase reports whether the case may participate in risk and financial
// analytics. Placeholder cases exist transiently between creation and intake
// completion; they stay visible in the registry but never pollute counts,
// alerts or revenue totals.
func IsValidCase(c models.Case) bool {
	first := strings.TrimSpace(c.DefendantFirstName)
	last := strings.TrimSpace(c.DefendantLastName)
	return first != "" && last != "" && !IsPlaceholder(c)
}

// ValidCases returns the subset of cases passing IsValidCase, in input order.
func ValidCases(cases []models.Case) []models.Case {
	valid := []models.Case{}
	for _, c := range cases {
		if IsValidCase(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

// FilterRegistry applies the free-text defendant search and the lifecycle
// segment to the full case set. Validity is deliberately not consulted here:
// the investigator must be able to find placeholder cases to finish them.
func FilterRegistry(cases []models.Case, search string, lifecycle LifecycleFilter) []models.Case {
	needle := strings.ToLower(search)
	out := []models.Case{}
	for _, c := range cases {
		name := strings.ToLower(c.DefendantFirstName + " " + c.DefendantLastName)
		if !strings.Contains(name, needle) {
			continue
		}
		switch lifecycle {
		case LifecycleActive:
			if c.Status == models.CaseStatusClosed {
				continue
			}
		case LifecycleUnscheduled:
			if c.Status == models.CaseStatusClosed || c.NextCourtDate != "" {
				continue
			}
		case LifecycleArchive:
			if c.Status != models.CaseStatusClosed {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// SortRegistry orders the filtered registry with the layered comparator, in
// strict priority: needs-intake cases first, placeholder cases last, then the
// selected key. The first two tiers intentionally override the key so that
// incomplete intakes stay visible at the top regardless of alphabetization.
// The sort is stable, so equal-ranked cases keep their input order.
func SortRegistry(cases []models.Case, key RegistrySort) []models.Case {
	sorted := make([]models.Case, len(cases))
	copy(sorted, cases)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.NeedsIntake != b.NeedsIntake {
			return a.NeedsIntake
		}

		pa, pb := IsPlaceholder(a), IsPlaceholder(b)
		if pa != pb {
			return !pa
		}
		if pa && pb {
			return false // equal-ranked
		}

		switch key {
		case SortByDefendant:
			na := strings.ToUpper(a.DefendantLastName + " " + a.DefendantFirstName)
			nb := strings.ToUpper(b.DefendantLastName + " " + b.DefendantFirstName)
			return na < nb
		case SortByCourtDate:
			if a.NextCourtDate == "" {
				return false
			}
			if b.NextCourtDate == "" {
				return true
			}
			return a.NextCourtDate < b.NextCourtDate
		case SortByAttorney:
			return a.AttorneyName < b.AttorneyName
		case SortByDateOpened:
			// missing dateOpened compares as empty string, i.e. the epoch
			return a.DateOpened < b.DateOpened
		}
		return false
	})
	return sorted
}

// RegistryCounts are the per-segment case totals shown on the registry tabs.
type RegistryCounts struct {
	Active      int `json:"active"`
	Unscheduled int `json:"unscheduled"`
	Archive     int `json:"archive"`
}

// CountRegistry tallies the lifecycle segments over the full case set.
func CountRegistry(cases []models.Case) RegistryCounts {
	var counts RegistryCounts
	for _, c := range cases {
		if c.Status == models.CaseStatusClosed {
			counts.Archive++
			continue
		}
		counts.Active++
		if c.NextCourtDate == "" {
			counts.Unscheduled++
		}
	}
	return counts
}
