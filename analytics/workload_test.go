package analytics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/models"
)

func TestBuildWorkloadGroupsByActivityDate(t *testing.T) {
	cases := []models.Case{
		{
			ID: "c1", DefendantFirstName: "Ana", DefendantLastName: "Reyes", DateOpened: "2024-02-01",
			Activities: []models.Activity{
				{ID: "a1", CaseID: "c1", Date: "2024-03-05", Code: "NEW", Hours: 0.8},
				{ID: "a2", CaseID: "c1", Date: "2024-03-06", Code: "PC", Hours: 1.5},
			},
		},
		{
			ID: "c2", DefendantFirstName: "Luis", DefendantLastName: "Ortega", DateOpened: "2024-01-10",
			Activities: []models.Activity{
				{ID: "a3", CaseID: "c2", Date: "2024-03-05", Code: "TR", Hours: 11.0},
			},
		},
	}

	workload := analytics.BuildWorkload(cases)

	assert.Len(t, workload, 2)
	assert.InDelta(t, 11.8, workload["2024-03-05"].TotalHours, 1e-9)
	assert.InDelta(t, 1.5, workload["2024-03-06"].TotalHours, 1e-9)
	assert.Len(t, workload["2024-03-05"].Activities, 2)
	assert.Equal(t, "Reyes, Ana", workload["2024-03-05"].Activities[0].DefendantName)
	assert.Equal(t, "c2", workload["2024-03-05"].Activities[1].CaseID)

	// no entry for dates without activity: missing key means zero load
	_, ok := workload["2024-02-01"]
	assert.False(t, ok)
}

func TestBuildWorkloadIncludesPlaceholderCases(t *testing.T) {
	cases := []models.Case{
		{
			ID: "c1", DefendantFirstName: "", DefendantLastName: "NEW CASE",
			Activities: []models.Activity{{ID: "a1", Date: "2024-03-05", Hours: 2}},
		},
	}

	workload := analytics.BuildWorkload(cases)

	assert.InDelta(t, 2.0, workload["2024-03-05"].TotalHours, 1e-9)
	assert.Equal(t, "NEW CASE, CASE", workload["2024-03-05"].Activities[0].DefendantName)
}

func TestBuildWorkloadCoercesMalformedHours(t *testing.T) {
	cases := []models.Case{
		{
			ID: "c1",
			Activities: []models.Activity{
				{ID: "a1", Date: "2024-03-05", Hours: math.NaN()},
				{ID: "a2", Date: "2024-03-05", Hours: -3},
				{ID: "a3", Date: "2024-03-05", Hours: 1.2},
			},
		},
	}

	workload := analytics.BuildWorkload(cases)

	assert.InDelta(t, 1.2, workload["2024-03-05"].TotalHours, 1e-9)
}

// conservation law: the workload totals sum to the ledger's total hours
func TestBuildWorkloadConservesHours(t *testing.T) {
	cases := []models.Case{
		{ID: "c1", Activities: []models.Activity{
			{ID: "a1", Date: "2024-03-01", Hours: 0.8},
			{ID: "a2", Date: "2024-03-02", Hours: 2.5},
			{ID: "a3", Date: "2024-03-02", Hours: 0.3},
		}},
		{ID: "c2", Activities: []models.Activity{
			{ID: "a4", Date: "2024-03-01", Hours: 4.4},
			{ID: "a5", Date: "2024-04-11", Hours: 7.25},
		}},
	}

	var ledger float64
	for _, c := range cases {
		for _, a := range c.Activities {
			ledger += a.Hours
		}
	}

	var aggregated float64
	for _, entry := range analytics.BuildWorkload(cases) {
		aggregated += entry.TotalHours
	}

	assert.InDelta(t, ledger, aggregated, 1e-9)
}

func TestRecentActivitiesNewestFirstCapped(t *testing.T) {
	c := models.Case{ID: "c1", DefendantFirstName: "Ana", DefendantLastName: "Reyes"}
	for i := 0; i < 30; i++ {
		c.Activities = append(c.Activities, models.Activity{
			ID:   string(rune('a' + i)),
			Date: "2024-03-05",
		})
	}
	c.Activities = append(c.Activities, models.Activity{ID: "latest", Date: "2024-03-09"})

	feed := analytics.RecentActivities([]models.Case{c}, 25)

	assert.Len(t, feed, 25)
	assert.Equal(t, "latest", feed[0].ID)
	// ties keep ledger order under the stable sort
	assert.Equal(t, "a", feed[1].ID)
}
