package analytics

import (
	"time"

	"github.com/brentis/investigator-api/models"
)

// DefaultHourlyRate is the billing rate applied when estimating the pending
// pipeline, in currency units per hour. Overridable through configuration.
const DefaultHourlyRate = 45.00

// VoucherSegment is one view of the voucher hub.
type VoucherSegment string

// Voucher hub segments. Missing, Pre-Audit, Submitted and Intend Not to Bill
// are mutually exclusive; Paid Retained Services is a refinement of Paid, not
// exclusive of it.
const (
	SegmentMissing         VoucherSegment = "Missing"
	SegmentPreAudit        VoucherSegment = "Pre-Audit"
	SegmentSubmitted       VoucherSegment = "Submitted"
	SegmentPaid            VoucherSegment = "Paid"
	SegmentPaidRetained    VoucherSegment = "Paid Retained Services"
	SegmentIntendNotToBill VoucherSegment = "Intend Not to Bill"
)

// MatchesSegment reports whether the case belongs to the given voucher hub
// segment. Each segment is an independent predicate over status,
// voucherStatus and the retained-services flag.
func MatchesSegment(c models.Case, seg VoucherSegment) bool {
	switch seg {
	case SegmentMissing:
		return c.Status == models.CaseStatusOpen && c.VoucherStatus == models.VoucherMissing
	case SegmentPreAudit:
		return c.Status == models.CaseStatusClosed &&
			(c.VoucherStatus == models.VoucherMissing || c.VoucherStatus == models.VoucherOpen)
	case SegmentSubmitted:
		return c.VoucherStatus == models.VoucherSubmitted
	case SegmentPaid:
		return c.VoucherStatus == models.VoucherPaid
	case SegmentPaidRetained:
		return c.VoucherStatus == models.VoucherPaid && c.IsRetainedServices
	case SegmentIntendNotToBill:
		return c.VoucherStatus == models.VoucherIntendNotToBill
	}
	return false
}

// VoucherCounts are the per-segment case tallies over the valid case set.
type VoucherCounts struct {
	Missing         int `json:"missing"`
	PreAudit        int `json:"preAudit"`
	Submitted       int `json:"submitted"`
	Paid            int `json:"paid"`
	PaidRetained    int `json:"paidRetained"`
	IntendNotToBill int `json:"intendNotToBill"`
}

// CountVoucherSegments tallies every segment over the valid case set.
func CountVoucherSegments(valid []models.Case) VoucherCounts {
	var counts VoucherCounts
	for _, c := range valid {
		if MatchesSegment(c, SegmentMissing) {
			counts.Missing++
		}
		if MatchesSegment(c, SegmentPreAudit) {
			counts.PreAudit++
		}
		if MatchesSegment(c, SegmentSubmitted) {
			counts.Submitted++
		}
		if MatchesSegment(c, SegmentPaid) {
			counts.Paid++
		}
		if MatchesSegment(c, SegmentPaidRetained) {
			counts.PaidRetained++
		}
		if MatchesSegment(c, SegmentIntendNotToBill) {
			counts.IntendNotToBill++
		}
	}
	return counts
}

// CaseHours sums the case's activity hours, coercing malformed entries to 0.
func CaseHours(c models.Case) float64 {
	var total float64
	for _, a := range c.Activities {
		total += coerceHours(a.Hours)
	}
	return total
}

// RevenueSecured sums amountPaid over valid cases whose voucher is Paid.
func RevenueSecured(valid []models.Case) float64 {
	var total float64
	for _, c := range valid {
		if c.VoucherStatus == models.VoucherPaid {
			total += c.AmountPaid
		}
	}
	return total
}

// RetainedRevenue sums amountPaid over valid paid retained-services cases.
func RetainedRevenue(valid []models.Case) float64 {
	var total float64
	for _, c := range valid {
		if c.VoucherStatus == models.VoucherPaid && c.IsRetainedServices {
			total += c.AmountPaid
		}
	}
	return total
}

// PendingPipeline estimates the value of submitted-but-unpaid vouchers as
// logged hours times the hourly rate. This is an estimate, not an invoiced
// amount; it is never persisted.
func PendingPipeline(valid []models.Case, hourlyRate float64) float64 {
	var total float64
	for _, c := range valid {
		if c.VoucherStatus == models.VoucherSubmitted {
			total += CaseHours(c) * hourlyRate
		}
	}
	return total
}

// AgedVoucherBuckets groups open-voucher cases by how long the voucher has
// been missing since the case was opened.
type AgedVoucherBuckets struct {
	Over90     []models.Case `json:"over90"`
	Days60To89 []models.Case `json:"days60to89"`
	Days30To59 []models.Case `json:"days30to59"`
}

// AgeMissingVouchers buckets valid missing-voucher cases by age of
// dateOpened relative to today.
func AgeMissingVouchers(valid []models.Case, today time.Time) AgedVoucherBuckets {
	var buckets AgedVoucherBuckets
	for _, c := range valid {
		if c.VoucherStatus != models.VoucherMissing {
			continue
		}
		age := DaysSince(today, c.DateOpened)
		switch {
		case age >= 90:
			buckets.Over90 = append(buckets.Over90, c)
		case age >= 60:
			buckets.Days60To89 = append(buckets.Days60To89, c)
		case age >= 30:
			buckets.Days30To59 = append(buckets.Days30To59, c)
		}
	}
	return buckets
}

// CaseAgeBuckets groups valid cases by days since dateOpened.
type CaseAgeBuckets struct {
	New      []models.Case `json:"new"`      // 30 days or less
	Seasoned []models.Case `json:"seasoned"` // 31 through 90 days
	Legacy   []models.Case `json:"legacy"`   // 91 days and older
}

// BucketCaseAges splits the valid case set into age tiers.
func BucketCaseAges(valid []models.Case, today time.Time) CaseAgeBuckets {
	var buckets CaseAgeBuckets
	for _, c := range valid {
		age := DaysSince(today, c.DateOpened)
		switch {
		case age >= 91:
			buckets.Legacy = append(buckets.Legacy, c)
		case age >= 31:
			buckets.Seasoned = append(buckets.Seasoned, c)
		default:
			buckets.New = append(buckets.New, c)
		}
	}
	return buckets
}
