package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
	"github.com/brentis/investigator-api/models"
)

// Registry exported for testing purposes
type Registry struct {
	DB databases.CaseDatabase
}

// RegistryResponse is the filtered, ordered registry view plus the tab counts
type RegistryResponse struct {
	Counts analytics.RegistryCounts `json:"counts"`
	Cases  []models.Case            `json:"cases"`
}

// RegistryHandler returns the case registry filtered by ?search= and
// ?lifecycle=, ordered by the layered comparator with ?sort= as the key.
// Counts always cover the full collection, not the filtered view.
func (reg Registry) RegistryHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	lifecycle := analytics.LifecycleFilter(r.URL.Query().Get("lifecycle"))
	sortKey := analytics.RegistrySort(r.URL.Query().Get("sort"))
	if sortKey == "" {
		sortKey = analytics.SortByDefendant
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := reg.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	filtered := analytics.FilterRegistry(cases, search, lifecycle)
	sorted := analytics.SortRegistry(filtered, sortKey)

	resp := RegistryResponse{
		Counts: analytics.CountRegistry(cases),
		Cases:  sorted,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
