package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
	"github.com/brentis/investigator-api/models"
)

// Voucher exported for testing purposes
type Voucher struct {
	DB         databases.CaseDatabase
	HourlyRate float64
}

// paidTimeframeDays maps the Paid-segment timeframe filter onto a max age in
// days of datePaid. Anything else means no timeframe restriction.
var paidTimeframeDays = map[string]int{
	"Weekly":    7,
	"Monthly":   30,
	"Quarterly": 90,
	"Yearly":    365,
}

// VoucherHubResponse is one filtered voucher hub view plus the segment counts
// and financial rollups over the whole valid case set.
type VoucherHubResponse struct {
	Counts          analytics.VoucherCounts `json:"counts"`
	RevenueSecured  float64                 `json:"revenueSecured"`
	RetainedRevenue float64                 `json:"retainedRevenue"`
	PendingPipeline float64                 `json:"pendingPipeline"`
	Cases           []models.Case           `json:"cases"`
}

// VoucherHubHandler returns the voucher hub for one ?segment=, optionally
// narrowed by ?attorney= and, for the Paid segment, a ?timeframe= window over
// datePaid. The listing sorts by defendant last name; revenueSecured covers
// the filtered view so the figure tracks what is on screen.
func (v Voucher) VoucherHubHandler(w http.ResponseWriter, r *http.Request) {
	segment := analytics.VoucherSegment(r.URL.Query().Get("segment"))
	if segment == "" {
		segment = analytics.SegmentMissing
	}
	attorney := r.URL.Query().Get("attorney")
	timeframe := r.URL.Query().Get("timeframe")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := v.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	valid := analytics.ValidCases(cases)
	today := analytics.Day(time.Now().UTC())

	view := []models.Case{}
	for _, c := range valid {
		if !analytics.MatchesSegment(c, segment) {
			continue
		}
		if attorney != "" && !strings.EqualFold(c.AttorneyName, attorney) {
			continue
		}
		if maxAge, ok := paidTimeframeDays[timeframe]; ok && segment == analytics.SegmentPaid {
			if c.DatePaid == "" {
				continue
			}
			age := analytics.DaysSince(today, c.DatePaid)
			if age < 0 || age > maxAge {
				continue
			}
		}
		view = append(view, c)
	}

	sort.SliceStable(view, func(i, j int) bool {
		return strings.ToUpper(view[i].DefendantLastName) < strings.ToUpper(view[j].DefendantLastName)
	})

	rate := v.HourlyRate
	if rate <= 0 {
		rate = config.DefaultHourlyRate
	}

	resp := VoucherHubResponse{
		Counts:          analytics.CountVoucherSegments(valid),
		RevenueSecured:  analytics.RevenueSecured(view),
		RetainedRevenue: analytics.RetainedRevenue(valid),
		PendingPipeline: analytics.PendingPipeline(valid, rate),
		Cases:           view,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
