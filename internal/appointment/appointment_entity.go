package appointment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillingStatus string

const (
	BillingStatusUnbilled BillingStatus = "UNBILLED"
	BillingStatusInvoiced BillingStatus = "INVOICED"
)

// Appointment rows are owned by the scheduling service. Billing only reads
// them and flips billing_status when an invoice claims or releases them.
type Appointment struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"column:customer_id;type:uuid;not null;index"`
	StartAt       *time.Time     `gorm:"column:start_at"`
	BillingStatus BillingStatus  `gorm:"column:billing_status;type:varchar(20);not null;default:UNBILLED;index"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Services []AttachedService `gorm:"foreignKey:AppointmentID"`
}

func (Appointment) TableName() string {
	return "appointments"
}

type AttachedService struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	AppointmentID uuid.UUID       `gorm:"column:appointment_id;type:uuid;not null;index"`
	Name          string          `gorm:"column:name"`
	BasePrice     decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null"`
}

func (AttachedService) TableName() string {
	return "appointment_services"
}
