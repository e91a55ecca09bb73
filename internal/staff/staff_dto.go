package staff

import (
	"github.com/shopspring/decimal"
)

type CheckInRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
}

type CheckOutRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
}

type AdjustmentRequest struct {
	StaffID string          `json:"staff_id" binding:"required,uuid"`
	Type    string          `json:"type" binding:"required,oneof=BONUS DEDUCTION ADVANCE"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Reason  string          `json:"reason" binding:"required,min=3"`
	Date    *string         `json:"date"`
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	Date       string  `json:"date"`
	CheckInAt  *string `json:"check_in_at,omitempty"`
	CheckOutAt *string `json:"check_out_at,omitempty"`
	Status     string  `json:"status"`
}

type AdjustmentResponse struct {
	ID      string          `json:"id"`
	StaffID string          `json:"staff_id"`
	Type    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  string          `json:"reason"`
	Date    string          `json:"date"`
}

type ProfileResponse struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	Name              string           `json:"name"`
	PayModels         []PayModel       `json:"pay_models"`
	DailyRate         decimal.Decimal  `json:"daily_rate"`
	MealVoucher       decimal.Decimal  `json:"meal_voucher"`
	TransportVoucher  decimal.Decimal  `json:"transport_voucher"`
	PerLegRate        *decimal.Decimal `json:"per_leg_rate,omitempty"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	FixedSalary       *decimal.Decimal `json:"fixed_salary,omitempty"`
	IsActive          bool             `json:"is_active"`
}
