package payroll

import (
	"github.com/shopspring/decimal"
)

type PreviewFilterRequest struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

type ClosePeriodRequest struct {
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	StaffIDs  []string `json:"staff_ids" binding:"required,min=1,dive,uuid"`
}

// DetailLine is one provenance row inside an earnings bucket.
type DetailLine struct {
	Date    string          `json:"date,omitempty"`
	Type    string          `json:"type,omitempty"`
	Service string          `json:"service,omitempty"`
	Value   decimal.Decimal `json:"value"`
	Notes   string          `json:"notes,omitempty"`
}

type EarningsBucket struct {
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Details []DetailLine    `json:"details"`
}

type FixedBucket struct {
	Total   decimal.Decimal `json:"total"`
	Details []DetailLine    `json:"details"`
}

type AdjustmentItem struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
	Date   string          `json:"date"`
}

type AdjustmentsBucket struct {
	Total decimal.Decimal  `json:"total"`
	Items []AdjustmentItem `json:"items"`
}

type Earnings struct {
	Daily       EarningsBucket `json:"daily"`
	Legs        EarningsBucket `json:"legs"`
	Commissions EarningsBucket `json:"commissions"`
	Fixed       FixedBucket    `json:"fixed"`
}

type PeriodRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PreviewResponse is the full structured breakdown, not just the total, so
// callers can show where every cent came from.
type PreviewResponse struct {
	StaffID     string            `json:"staff_id"`
	StaffName   string            `json:"staff_name"`
	Period      PeriodRange       `json:"period"`
	Earnings    Earnings          `json:"earnings"`
	Adjustments AdjustmentsBucket `json:"adjustments"`
	TotalDue    decimal.Decimal   `json:"total_due"`
}

type PeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	ClosedBy  string `json:"closed_by"`
}

type StatementResponse struct {
	ID               string          `json:"id"`
	StaffPayPeriodID string          `json:"staff_pay_period_id"`
	StaffID          string          `json:"staff_id"`
	BaseTotal        decimal.Decimal `json:"base_total"`
	AdjustmentsTotal decimal.Decimal `json:"adjustments_total"`
	TotalDue         decimal.Decimal `json:"total_due"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
}

type ClosePeriodResponse struct {
	Period     PeriodResponse      `json:"period"`
	Statements []StatementResponse `json:"statements"`
}
