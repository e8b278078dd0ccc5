package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
)

// Workload exported for testing purposes
type Workload struct {
	DB databases.CaseDatabase
}

// WorkloadDay is one calendar cell of the month view
type WorkloadDay struct {
	Date       string                       `json:"date"`
	TotalHours float64                      `json:"totalHours"`
	Activities []analytics.WorkloadActivity `json:"activities"`
}

// WorkloadCalendarResponse is the month view backing the hours heatmap
type WorkloadCalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []WorkloadDay `json:"days"`
}

// WorkloadCalendarHandler returns one calendar month of aggregated activity
// hours. ?year= and ?month= default to the current UTC month.
func (wl Workload) WorkloadCalendarHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		zap.S().Debugf("year not set, using current year %d", now.Year())
		year = now.Year()
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		zap.S().Debugf("month not set, using current month %d", int(now.Month()))
		month = int(now.Month())
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := wl.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	workload := analytics.BuildWorkload(cases)

	days := []WorkloadDay{}
	for _, d := range analytics.DaysInCalendarMonth(year, time.Month(month)) {
		key := analytics.FormatDay(d)
		entry := workload[key]
		if entry.Activities == nil {
			entry.Activities = []analytics.WorkloadActivity{}
		}
		days = append(days, WorkloadDay{
			Date:       key,
			TotalHours: entry.TotalHours,
			Activities: entry.Activities,
		})
	}

	resp := WorkloadCalendarResponse{Year: year, Month: month, Days: days}
	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
