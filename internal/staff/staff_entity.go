package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PayModel string

const (
	PayModelDaily       PayModel = "DAILY"
	PayModelPerLeg      PayModel = "PER_LEG"
	PayModelCommission  PayModel = "COMMISSION"
	PayModelFixedSalary PayModel = "FIXED_SALARY"
)

// Profile is the pay configuration of one staff member. A member may carry
// several pay models at once, e.g. DAILY plus PER_LEG for a groomer who also
// drives.
type Profile struct {
	ID                uuid.UUID                     `gorm:"column:id;type:uuid;primaryKey"`
	UserID            uuid.UUID                     `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Name              string                        `gorm:"column:name"`
	PayModels         datatypes.JSONSlice[PayModel] `gorm:"column:pay_models"`
	DailyRate         decimal.Decimal               `gorm:"column:daily_rate;type:numeric(12,2);not null;default:0"`
	MealVoucher       decimal.Decimal               `gorm:"column:meal_voucher;type:numeric(12,2);not null;default:0"`
	TransportVoucher  decimal.Decimal               `gorm:"column:transport_voucher;type:numeric(12,2);not null;default:0"`
	PerLegRate        *decimal.Decimal              `gorm:"column:per_leg_rate;type:numeric(12,2)"`
	CommissionPercent *decimal.Decimal              `gorm:"column:commission_percent;type:numeric(5,2)"`
	FixedSalary       *decimal.Decimal              `gorm:"column:fixed_salary;type:numeric(12,2)"`
	IsActive          bool                          `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time                     `gorm:"column:created_at"`
	UpdatedAt         time.Time                     `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt                `gorm:"column:deleted_at;index"`
}

func (Profile) TableName() string {
	return "staff_profiles"
}

func (p Profile) HasModel(m PayModel) bool {
	for _, v := range p.PayModels {
		if v == m {
			return true
		}
	}
	return false
}

type AttendanceStatus string

const (
	AttendanceIncomplete AttendanceStatus = "incomplete"
	AttendanceOK         AttendanceStatus = "ok"
)

// AttendanceRecord holds at most one row per staff member per calendar day.
type AttendanceRecord struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	StaffID         uuid.UUID        `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:idx_attendance_staff_date"`
	Date            time.Time        `gorm:"column:date;type:date;not null;uniqueIndex:idx_attendance_staff_date"`
	CheckInAt       *time.Time       `gorm:"column:check_in_at"`
	CheckOutAt      *time.Time       `gorm:"column:check_out_at"`
	Status          AttendanceStatus `gorm:"column:status;type:varchar(20);not null"`
	Notes           *string          `gorm:"column:notes"`
	CreatedByUserID string           `gorm:"column:created_by_user_id"`
	CreatedAt       time.Time        `gorm:"column:created_at"`
}

func (AttendanceRecord) TableName() string {
	return "staff_attendance_records"
}

type AdjustmentType string

const (
	AdjustmentBonus     AdjustmentType = "BONUS"
	AdjustmentDeduction AdjustmentType = "DEDUCTION"
	AdjustmentAdvance   AdjustmentType = "ADVANCE"
)

// PayAdjustment stores a positive amount; the type decides the sign at
// payroll time. StaffPayStatementID is set once the adjustment is consumed by
// a closed period, which removes it from future previews.
type PayAdjustment struct {
	ID                  uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	StaffID             uuid.UUID       `gorm:"column:staff_id;type:uuid;not null;index"`
	Type                AdjustmentType  `gorm:"column:type;type:varchar(20);not null"`
	Amount              decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Reason              string          `gorm:"column:reason;not null"`
	Date                time.Time       `gorm:"column:date;type:date;not null;index"`
	StaffPayStatementID *uuid.UUID      `gorm:"column:staff_pay_statement_id;type:uuid;index"`
	CreatedByUserID     string          `gorm:"column:created_by_user_id"`
	CreatedAt           time.Time       `gorm:"column:created_at"`
}

func (PayAdjustment) TableName() string {
	return "staff_pay_adjustments"
}

// ServiceExecution is a consumed record of one grooming service performed by
// a staff member, priced at execution time.
type ServiceExecution struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	StaffID     uuid.UUID       `gorm:"column:staff_id;type:uuid;not null;index"`
	ServiceName string          `gorm:"column:service_name"`
	BasePrice   decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null"`
	ExecutedAt  time.Time       `gorm:"column:executed_at;not null;index"`
}

func (ServiceExecution) TableName() string {
	return "staff_service_executions"
}
