package events

import "time"

const BillingAuditTopic = "billing.audit.v1"

type InvoiceIssuedEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  string    `json:"invoice_id"`
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

type InvoiceVoidedEvent struct {
	EventType   string    `json:"event_type"`
	InvoiceID   string    `json:"invoice_id"`
	CustomerID  string    `json:"customer_id"`
	PriorStatus string    `json:"prior_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type CreditNoteCreatedEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  string    `json:"invoice_id"`
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PaymentRecordedEvent struct {
	EventType  string    `json:"event_type"`
	EntryID    string    `json:"entry_id"`
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	Method     string    `json:"method"`
	OccurredAt time.Time `json:"occurred_at"`
}
