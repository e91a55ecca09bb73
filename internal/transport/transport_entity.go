package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransportType string

const (
	TypePickUp    TransportType = "PICK_UP"
	TypeDropOff   TransportType = "DROP_OFF"
	TypeRoundTrip TransportType = "ROUND_TRIP"
)

// ExecutionLegType is the direction recorded on a completed leg.
type ExecutionLegType string

const (
	ExecutionLegPickup  ExecutionLegType = "PICKUP"
	ExecutionLegDropoff ExecutionLegType = "DROPOFF"
)

// LegType names the priced component of a round trip: LEVA carries the pet
// out, TRAZ brings it back.
type LegType string

const (
	LegLeva LegType = "LEVA"
	LegTraz LegType = "TRAZ"
)

// LegTypeOf maps the execution direction to the priced leg component.
func LegTypeOf(t ExecutionLegType) LegType {
	if t == ExecutionLegDropoff {
		return LegTraz
	}
	return LegLeva
}

// Quote is owned by the quoting service; billing reads it for the active
// snapshot pointer.
type Quote struct {
	ID               uuid.UUID     `gorm:"column:id;type:uuid;primaryKey"`
	ActiveSnapshotID *uuid.UUID    `gorm:"column:active_snapshot_id;type:uuid"`
	TransportType    TransportType `gorm:"column:transport_type;type:varchar(20);not null"`
	CreatedAt        time.Time     `gorm:"column:created_at"`
}

func (Quote) TableName() string {
	return "transport_quotes"
}

// PricingSnapshot is the immutable price breakdown captured at quote time.
// Repricing creates a new row and repoints the quote; existing rows are never
// updated, so payroll computed against an old snapshot stays reproducible.
type PricingSnapshot struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	QuoteID     uuid.UUID       `gorm:"column:quote_id;type:uuid;not null;index"`
	Largada     decimal.Decimal `gorm:"column:largada;type:numeric(12,2);not null"`
	Leva        decimal.Decimal `gorm:"column:leva;type:numeric(12,2);not null"`
	Traz        decimal.Decimal `gorm:"column:traz;type:numeric(12,2);not null"`
	Retorno     decimal.Decimal `gorm:"column:retorno;type:numeric(12,2);not null"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (PricingSnapshot) TableName() string {
	return "transport_pricing_snapshots"
}

// LegExecution is one completed directional segment of a transport job.
// TransportType and the snapshot pointer are denormalized from the quote at
// completion time so payroll never depends on later repricing.
type LegExecution struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	AppointmentID uuid.UUID        `gorm:"column:appointment_id;type:uuid;not null;index"`
	StaffID       uuid.UUID        `gorm:"column:staff_id;type:uuid;not null;index"`
	LegType       ExecutionLegType `gorm:"column:leg_type;type:varchar(10);not null"`
	TransportType TransportType    `gorm:"column:transport_type;type:varchar(20);not null"`
	LegValue      *decimal.Decimal `gorm:"column:leg_value;type:numeric(12,2)"`
	SnapshotID    *uuid.UUID       `gorm:"column:pricing_snapshot_id;type:uuid"`
	CompletedAt   time.Time        `gorm:"column:completed_at;not null;index"`
	Notes         *string          `gorm:"column:notes"`

	Snapshot *PricingSnapshot `gorm:"foreignKey:SnapshotID"`
}

func (LegExecution) TableName() string {
	return "transport_leg_executions"
}
