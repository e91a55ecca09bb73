package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	TypeInvoiceDebit  EntryType = "INVOICE_DEBIT"
	TypePaymentCredit EntryType = "PAYMENT_CREDIT"
	TypeAdjustment    EntryType = "ADJUSTMENT"
)

type Direction string

const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// Entry is append-only: rows are never updated or deleted, corrections are new
// entries. Amount is always non-negative; the sign lives in Direction.
type Entry struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID      uuid.UUID       `gorm:"column:customer_id;type:uuid;not null;index"`
	Type            EntryType       `gorm:"column:type;type:varchar(20);not null"`
	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Direction       Direction       `gorm:"column:direction;type:varchar(10);not null"`
	InvoiceID       *uuid.UUID      `gorm:"column:invoice_id;type:uuid;index"`
	Reference       string          `gorm:"column:reference;type:varchar(200);not null"`
	CreatedByUserID string          `gorm:"column:created_by_user_id;type:varchar(64);not null"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

func (Entry) TableName() string {
	return "ledger_entries"
}
