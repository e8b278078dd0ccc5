package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
)

// Dashboard exported for testing purposes
type Dashboard struct {
	CDB        databases.CaseDatabase
	TDB        databases.GlobalTaskDatabase
	HourlyRate float64
}

// DashboardHandler recomputes the full analytics snapshot from the current
// case and task collections. There is no cache or sync token; every request
// is a fresh derivation.
func (d Dashboard) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := d.CDB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	tasks, err := d.TDB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get tasks", http.StatusInternalServerError, w, err)
		return
	}

	rate := d.HourlyRate
	if rate <= 0 {
		rate = config.DefaultHourlyRate
	}

	snapshot := analytics.BuildSnapshot(cases, tasks, analytics.Day(time.Now().UTC()), rate)

	b, err := json.Marshal(snapshot)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
