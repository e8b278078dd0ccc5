package analytics

import (
	"math"
	"sort"

	"github.com/brentis/investigator-api/models"
)

// WorkloadActivity is an activity annotated with its owning case's display
// name for drill-down views.
type WorkloadActivity struct {
	models.Activity
	DefendantName string `json:"defendantName"`
}

// WorkloadEntry is the aggregated load for one calendar date.
type WorkloadEntry struct {
	TotalHours float64            `json:"totalHours"`
	Activities []WorkloadActivity `json:"activities"`
}

// BuildWorkload groups every activity of every case by the activity's own
// date and sums hours per date. Placeholder cases contribute too: workload
// measures investigator time, not case quality. The map holds an entry only
// for dates with at least one activity; a missing key means zero load.
func BuildWorkload(cases []models.Case) map[string]WorkloadEntry {
	byDate := make(map[string]WorkloadEntry)
	for _, c := range cases {
		for _, a := range c.Activities {
			entry := byDate[a.Date]
			entry.TotalHours += coerceHours(a.Hours)
			annotated := WorkloadActivity{Activity: a, DefendantName: c.DefendantName()}
			annotated.CaseID = c.ID
			entry.Activities = append(entry.Activities, annotated)
			byDate[a.Date] = entry
		}
	}
	return byDate
}

// coerceHours maps missing or malformed hour values to 0 so NaN never
// propagates into aggregates.
func coerceHours(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return h
}

// RecentActivities flattens the valid cases' activity ledgers into one feed,
// newest first, capped at limit entries. Ties on date keep ledger order.
func RecentActivities(valid []models.Case, limit int) []WorkloadActivity {
	feed := []WorkloadActivity{}
	for _, c := range valid {
		for _, a := range c.Activities {
			annotated := WorkloadActivity{Activity: a, DefendantName: c.DefendantName()}
			annotated.CaseID = c.ID
			feed = append(feed, annotated)
		}
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date > feed[j].Date
	})
	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}
