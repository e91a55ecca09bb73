package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusIssued Status = "ISSUED"
	StatusPaid   Status = "PAID"
	StatusVoid   Status = "VOID"
)

type LineKind string

const (
	KindAppointment LineKind = "APPOINTMENT"
	KindAdjustment  LineKind = "ADJUSTMENT"
)

const DefaultCurrency = "BRL"

// Invoice keeps its issued totals forever: credit notes post negative lines
// and ledger credits but never rewrite Subtotal/Amount. Deletion is a soft
// delete, independent of lifecycle Status.
type Invoice struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Number        string          `gorm:"column:number;type:varchar(20);not null;uniqueIndex"`
	CustomerID    uuid.UUID       `gorm:"column:customer_id;type:uuid;not null;index"`
	Status        Status          `gorm:"column:status;type:varchar(10);not null;default:'DRAFT';index"`
	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null"`
	DiscountTotal decimal.Decimal `gorm:"column:discount_total;type:numeric(12,2);not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	DueDate       time.Time       `gorm:"column:due_date;not null"`
	PeriodStart   *time.Time      `gorm:"column:period_start"`
	PeriodEnd     *time.Time      `gorm:"column:period_end"`
	Currency      string          `gorm:"column:currency;type:varchar(3);not null;default:'BRL'"`
	Notes         *string         `gorm:"column:notes;type:text"`

	CreatedByUserID string         `gorm:"column:created_by_user_id;type:varchar(64);not null"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Lines    []Line       `gorm:"foreignKey:InvoiceID"`
	Customer *CustomerRef `gorm:"foreignKey:CustomerID;references:ID"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type Line struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID     uuid.UUID       `gorm:"column:invoice_id;type:uuid;not null;index"`
	Description   string          `gorm:"column:description;type:varchar(200);not null"`
	Quantity      int64           `gorm:"column:quantity;not null;default:1"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	LineTotal     decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null"`
	Kind          LineKind        `gorm:"column:kind;type:varchar(20);not null"`
	AppointmentID *uuid.UUID      `gorm:"column:appointment_id;type:uuid;index"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (Line) TableName() string {
	return "invoice_lines"
}

type CustomerRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (CustomerRef) TableName() string {
	return "customers"
}
