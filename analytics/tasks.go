package analytics

import (
	"sort"

	"github.com/brentis/investigator-api/models"
)

// SortTasksByDue orders tasks by due date ascending; tasks without a due date
// sort last. Stable on ties.
func SortTasksByDue(tasks []models.GlobalTask) []models.GlobalTask {
	sorted := make([]models.GlobalTask, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.DueDate == "" {
			return false
		}
		if b.DueDate == "" {
			return true
		}
		return a.DueDate < b.DueDate
	})
	return sorted
}

// TasksForCase returns the tasks referencing the given case id, due-date
// ordered. The caseId on a task is a weak reference; callers pass the case
// set so tasks pointing at cases no longer in the snapshot are silently
// dropped rather than surfaced against a phantom case.
func TasksForCase(tasks []models.GlobalTask, cases []models.Case, caseID string) []models.GlobalTask {
	known := false
	for _, c := range cases {
		if c.ID == caseID {
			known = true
			break
		}
	}
	if !known {
		return []models.GlobalTask{}
	}
	scoped := []models.GlobalTask{}
	for _, t := range tasks {
		if t.CaseID == caseID {
			scoped = append(scoped, t)
		}
	}
	return SortTasksByDue(scoped)
}
