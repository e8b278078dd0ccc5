package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/models"
)

func TestIsValidCase(t *testing.T) {
	valid := models.Case{DefendantFirstName: "Ana", DefendantLastName: "Reyes"}
	assert.True(t, analytics.IsValidCase(valid))

	for _, last := range []string{"NEW CASE", "new case", "NEW INTAKE", "NEW", "INTAKE", "", "  "} {
		c := models.Case{DefendantFirstName: "Ana", DefendantLastName: last}
		assert.False(t, analytics.IsValidCase(c), "last name %q should be invalid", last)
	}

	noFirst := models.Case{DefendantFirstName: "  ", DefendantLastName: "Reyes"}
	assert.False(t, analytics.IsValidCase(noFirst))
}

func TestFilterRegistrySearchAndLifecycle(t *testing.T) {
	cases := []models.Case{
		{ID: "1", DefendantFirstName: "Ana", DefendantLastName: "Reyes", Status: models.CaseStatusOpen, NextCourtDate: "2024-05-01"},
		{ID: "2", DefendantFirstName: "Luis", DefendantLastName: "Ortega", Status: models.CaseStatusOpen},
		{ID: "3", DefendantFirstName: "Mia", DefendantLastName: "Reyes", Status: models.CaseStatusClosed},
		{ID: "4", DefendantFirstName: "", DefendantLastName: "NEW CASE", Status: models.CaseStatusPending},
	}

	// search matches "first last" case-insensitively; placeholders stay findable
	got := analytics.FilterRegistry(cases, "reyes", "")
	assert.Len(t, got, 2)

	got = analytics.FilterRegistry(cases, "", analytics.LifecycleActive)
	assert.Len(t, got, 3) // Pending counts as not-Closed

	got = analytics.FilterRegistry(cases, "", analytics.LifecycleUnscheduled)
	assert.Len(t, got, 2)

	got = analytics.FilterRegistry(cases, "", analytics.LifecycleArchive)
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = analytics.FilterRegistry(cases, "new case", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
}

func TestSortRegistryNeedsIntakeBeatsSortKey(t *testing.T) {
	cases := []models.Case{
		{ID: "adams", DefendantFirstName: "Beth", DefendantLastName: "Adams"},
		{ID: "zamora", DefendantFirstName: "Raul", DefendantLastName: "Zamora", NeedsIntake: true},
	}

	sorted := analytics.SortRegistry(cases, analytics.SortByDefendant)

	assert.Equal(t, "zamora", sorted[0].ID)
	assert.Equal(t, "adams", sorted[1].ID)
}

func TestSortRegistryPlaceholdersAlwaysLast(t *testing.T) {
	cases := []models.Case{
		{ID: "p1", DefendantFirstName: "", DefendantLastName: "NEW CASE"},
		{ID: "z", DefendantFirstName: "Raul", DefendantLastName: "Zamora"},
		{ID: "p2", DefendantFirstName: "", DefendantLastName: "INTAKE"},
		{ID: "a", DefendantFirstName: "Beth", DefendantLastName: "Adams"},
	}

	sorted := analytics.SortRegistry(cases, analytics.SortByDefendant)

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "z", sorted[1].ID)
	// two placeholders are equal-ranked: insertion order preserved
	assert.Equal(t, "p1", sorted[2].ID)
	assert.Equal(t, "p2", sorted[3].ID)
}

func TestSortRegistryCourtDateMissingLast(t *testing.T) {
	cases := []models.Case{
		{ID: "none", DefendantFirstName: "A", DefendantLastName: "One"},
		{ID: "late", DefendantFirstName: "B", DefendantLastName: "Two", NextCourtDate: "2024-06-01"},
		{ID: "soon", DefendantFirstName: "C", DefendantLastName: "Three", NextCourtDate: "2024-04-15"},
	}

	sorted := analytics.SortRegistry(cases, analytics.SortByCourtDate)

	assert.Equal(t, []string{"soon", "late", "none"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortRegistryDateOpenedMissingTreatedAsEpoch(t *testing.T) {
	cases := []models.Case{
		{ID: "newer", DefendantFirstName: "A", DefendantLastName: "One", DateOpened: "2024-02-01"},
		{ID: "unknown", DefendantFirstName: "B", DefendantLastName: "Two", DateOpened: ""},
		{ID: "older", DefendantFirstName: "C", DefendantLastName: "Three", DateOpened: "2023-11-20"},
	}

	sorted := analytics.SortRegistry(cases, analytics.SortByDateOpened)

	assert.Equal(t, []string{"unknown", "older", "newer"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortRegistryIsTotalOrder(t *testing.T) {
	cases := []models.Case{
		{ID: "1", DefendantFirstName: "Ana", DefendantLastName: "Reyes", AttorneyName: "Brill"},
		{ID: "2", DefendantFirstName: "", DefendantLastName: "NEW CASE"},
		{ID: "3", DefendantFirstName: "Luis", DefendantLastName: "Ortega", NeedsIntake: true},
		{ID: "4", DefendantFirstName: "Mia", DefendantLastName: "Reyes", AttorneyName: "Avery"},
		{ID: "5", DefendantFirstName: "", DefendantLastName: "INTAKE", NeedsIntake: true},
	}

	for _, key := range []analytics.RegistrySort{
		analytics.SortByDefendant, analytics.SortByCourtDate,
		analytics.SortByAttorney, analytics.SortByDateOpened,
	} {
		once := analytics.SortRegistry(cases, key)
		twice := analytics.SortRegistry(once, key)
		assert.Equal(t, once, twice, "sorting twice must be a fixed point for %s", key)

		// needs-intake cases precede the rest regardless of key
		assert.True(t, once[0].NeedsIntake, "key %s", key)
		assert.True(t, once[1].NeedsIntake, "key %s", key)
	}
}

func TestCountRegistry(t *testing.T) {
	cases := []models.Case{
		{Status: models.CaseStatusOpen, NextCourtDate: "2024-05-01"},
		{Status: models.CaseStatusOpen},
		{Status: models.CaseStatusPending},
		{Status: models.CaseStatusClosed},
	}

	counts := analytics.CountRegistry(cases)

	assert.Equal(t, 3, counts.Active)
	assert.Equal(t, 2, counts.Unscheduled)
	assert.Equal(t, 1, counts.Archive)
}
