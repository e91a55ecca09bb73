package invoice

import (
	"go-groomops/internal/ledger"

	"github.com/shopspring/decimal"
)

type CreateDraftRequest struct {
	CustomerID     string           `json:"customer_id" binding:"required,uuid"`
	AppointmentIDs []string         `json:"appointment_ids" binding:"omitempty,dive,uuid"`
	PeriodStart    *string          `json:"period_start"`
	PeriodEnd      *string          `json:"period_end"`
	DiscountPct    *decimal.Decimal `json:"discount_pct"`
	Notes          *string          `json:"notes"`
}

type CreditNoteRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason" binding:"required,min=5"`
}

type ListFilterRequest struct {
	CustomerID string `form:"customerId" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT ISSUED PAID VOID"`
}

type LineResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
	Kind          string          `json:"kind"`
	AppointmentID *string         `json:"appointment_id,omitempty"`
}

type InvoiceResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Status        string          `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DueDate       string          `json:"due_date"`
	PeriodStart   *string         `json:"period_start,omitempty"`
	PeriodEnd     *string         `json:"period_end,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     string          `json:"created_at"`
	Lines         []LineResponse  `json:"lines"`
}

// InvoiceDetailResponse adds the ledger trail for the single-invoice view.
type InvoiceDetailResponse struct {
	InvoiceResponse
	LedgerEntries []ledger.EntryResponse `json:"ledger_entries"`
}

type CreditNoteResponse struct {
	Line  LineResponse         `json:"line"`
	Entry ledger.EntryResponse `json:"entry"`
}
