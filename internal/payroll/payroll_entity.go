package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PeriodStatus string

const (
	PeriodStatusClosed PeriodStatus = "CLOSED"
)

type PeriodType string

const (
	PeriodTypeRegular PeriodType = "REGULAR"
)

type StaffPayPeriod struct {
	ID              uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	StartDate       time.Time    `gorm:"column:start_date;type:date;not null"`
	EndDate         time.Time    `gorm:"column:end_date;type:date;not null"`
	Status          PeriodStatus `gorm:"column:status;type:varchar(20);not null"`
	Type            PeriodType   `gorm:"column:type;type:varchar(20);not null"`
	CreatedByUserID string       `gorm:"column:created_by_user_id"`
	CreatedAt       time.Time    `gorm:"column:created_at"`
}

func (StaffPayPeriod) TableName() string {
	return "staff_pay_periods"
}

type StatementStatus string

const (
	StatementStatusIssued StatementStatus = "ISSUED"
)

// StaffPayStatement is immutable once written. DetailsJSON carries the full
// preview snapshot so the line-item provenance survives later repricing or
// profile changes.
type StaffPayStatement struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	StaffPayPeriodID uuid.UUID       `gorm:"column:staff_pay_period_id;type:uuid;not null;index"`
	StaffID          uuid.UUID       `gorm:"column:staff_id;type:uuid;not null;index"`
	BaseTotal        decimal.Decimal `gorm:"column:base_total;type:numeric(12,2);not null"`
	AdjustmentsTotal decimal.Decimal `gorm:"column:adjustments_total;type:numeric(12,2);not null"`
	TotalDue         decimal.Decimal `gorm:"column:total_due;type:numeric(12,2);not null"`
	Status           StatementStatus `gorm:"column:status;type:varchar(20);not null"`
	DetailsJSON      datatypes.JSON  `gorm:"column:details_json;type:jsonb"`
	CreatedAt        time.Time       `gorm:"column:created_at"`

	Period *StaffPayPeriod `gorm:"foreignKey:StaffPayPeriodID"`
}

func (StaffPayStatement) TableName() string {
	return "staff_pay_statements"
}
