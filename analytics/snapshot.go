package analytics

import (
	"sort"
	"time"

	"github.com/brentis/investigator-api/models"
)

// Snapshot is the single immutable analytics projection handed to the
// presentation layer. Rebuilding it from the same inputs yields identical
// output; there is no incremental update model.
type Snapshot struct {
	ReferenceDate string `json:"referenceDate"`
	ActiveCount   int    `json:"activeCount"`

	Workload map[string]WorkloadEntry `json:"workloadByDate"`

	EvidenceAlerts   []EvidenceAlert   `json:"evidenceAlerts"`
	OverdueCourts    []models.Case     `json:"overdueCourts"`
	UrgentPreTrials  []models.Case     `json:"urgentPreTrials"`
	ColdStarts       []ColdStartCase   `json:"coldStarts"`
	StagnantRisks    []StagnantCase    `json:"stagnantRisks"`
	CapacityWarnings []CapacityWarning `json:"capacityWarnings"`

	VoucherCounts   VoucherCounts `json:"voucherCounts"`
	RevenueSecured  float64       `json:"revenueSecured"`
	RetainedRevenue float64       `json:"retainedRevenue"`
	// PendingPipeline is an estimate (hours times rate), never an invoiced
	// amount, and is never written back to the store.
	PendingPipeline float64 `json:"pendingPipeline"`

	AgedVouchers AgedVoucherBuckets `json:"agedVouchers"`
	CaseAges     CaseAgeBuckets     `json:"caseAges"`

	RecentActivities []WorkloadActivity  `json:"recentActivities"`
	UpcomingCourt    []models.Case       `json:"upcomingCourt"`
	Tasks            []models.GlobalTask `json:"tasks"`
}

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 25

// upcomingCourtWindowDays bounds the look-ahead for the upcoming-court list.
const upcomingCourtWindowDays = 7

// BuildSnapshot runs the whole engine over one in-memory snapshot of cases
// and tasks. today is the single reference date for every age computation in
// the pass; hourlyRate prices the pending pipeline. Inputs are not mutated
// and are assumed normalized by the fetch path.
func BuildSnapshot(cases []models.Case, tasks []models.GlobalTask, today time.Time, hourlyRate float64) Snapshot {
	valid := ValidCases(cases)
	workload := BuildWorkload(cases)

	activeCount := 0
	for _, c := range valid {
		if c.Status == models.CaseStatusOpen {
			activeCount++
		}
	}

	return Snapshot{
		ReferenceDate: FormatDay(today),
		ActiveCount:   activeCount,

		Workload: workload,

		EvidenceAlerts:   EvidenceAlerts(valid, today),
		OverdueCourts:    OverdueCourts(valid, today),
		UrgentPreTrials:  UrgentPreTrials(valid, today),
		ColdStarts:       ColdStarts(valid, today),
		StagnantRisks:    StagnantRisks(valid, today),
		CapacityWarnings: CapacityWarnings(workload),

		VoucherCounts:   CountVoucherSegments(valid),
		RevenueSecured:  RevenueSecured(valid),
		RetainedRevenue: RetainedRevenue(valid),
		PendingPipeline: PendingPipeline(valid, hourlyRate),

		AgedVouchers: AgeMissingVouchers(valid, today),
		CaseAges:     BucketCaseAges(valid, today),

		RecentActivities: RecentActivities(valid, recentActivityLimit),
		UpcomingCourt:    UpcomingCourt(valid, today),
		Tasks:            SortTasksByDue(tasks),
	}
}

// UpcomingCourt returns valid cases with a court date inside the next week,
// today inclusive, soonest first.
func UpcomingCourt(valid []models.Case, today time.Time) []models.Case {
	from := FormatDay(today)
	to := FormatDay(Day(today).AddDate(0, 0, upcomingCourtWindowDays))
	out := []models.Case{}
	for _, c := range valid {
		if c.NextCourtDate != "" && c.NextCourtDate >= from && c.NextCourtDate <= to {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextCourtDate < out[j].NextCourtDate
	})
	return out
}
