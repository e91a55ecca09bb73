package ledger

import "github.com/shopspring/decimal"

type PaymentRequest struct {
	CustomerID string          `json:"customer_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Method     *string         `json:"method"`
	Reference  *string         `json:"reference"`
}

type EntryResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Direction       string          `json:"direction"`
	InvoiceID       *string         `json:"invoice_id,omitempty"`
	Reference       string          `json:"reference"`
	CreatedByUserID string          `json:"created_by_user_id"`
	CreatedAt       string          `json:"created_at"`
}

type LedgerResponse struct {
	Balance decimal.Decimal `json:"balance"`
	Entries []EntryResponse `json:"entries"`
}
