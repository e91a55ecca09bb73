package payroll

import (
	"context"
	"time"

	"go-groomops/internal/staff"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreatePeriod(ctx context.Context, period *StaffPayPeriod) error
	CreateStatement(ctx context.Context, statement *StaffPayStatement) error
	LinkAdjustmentsToStatement(ctx context.Context, staffID string, start, end time.Time, statementID string) error
	FindStatementsByStaff(ctx context.Context, staffID string) ([]StaffPayStatement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreatePeriod(ctx context.Context, period *StaffPayPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *repository) CreateStatement(ctx context.Context, statement *StaffPayStatement) error {
	return r.db.WithContext(ctx).Create(statement).Error
}

// LinkAdjustmentsToStatement consumes the staff member's unbilled adjustments
// in range. Once linked they disappear from future previews.
func (r *repository) LinkAdjustmentsToStatement(ctx context.Context, staffID string, start, end time.Time, statementID string) error {
	return r.db.WithContext(ctx).
		Model(&staff.PayAdjustment{}).
		Where("staff_id = ?", staffID).
		Where("date >= ? AND date <= ?", start, end).
		Where("staff_pay_statement_id IS NULL").
		Update("staff_pay_statement_id", statementID).Error
}

func (r *repository) FindStatementsByStaff(ctx context.Context, staffID string) ([]StaffPayStatement, error) {
	var statements []StaffPayStatement
	err := r.db.WithContext(ctx).
		Preload("Period").
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&statements).Error
	return statements, err
}
