package staff

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindAttendanceByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*AttendanceRecord, error)
	FindAttendanceInRange(ctx context.Context, staffID string, start, end time.Time) ([]AttendanceRecord, error)
	CreateAttendance(ctx context.Context, record *AttendanceRecord) error
	UpdateAttendance(ctx context.Context, record *AttendanceRecord) error
	CreateAdjustment(ctx context.Context, adj *PayAdjustment) error
	FindUnbilledAdjustmentsInRange(ctx context.Context, staffID string, start, end time.Time) ([]PayAdjustment, error)
	FindServiceExecutionsInRange(ctx context.Context, staffID string, start, end time.Time) ([]ServiceExecution, error)
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

func (r *repository) FindByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAttendanceByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*AttendanceRecord, error) {
	var record AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("date = ?", date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) FindAttendanceInRange(ctx context.Context, staffID string, start, end time.Time) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) CreateAttendance(ctx context.Context, record *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) UpdateAttendance(ctx context.Context, record *AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) CreateAdjustment(ctx context.Context, adj *PayAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

// FindUnbilledAdjustmentsInRange only returns adjustments no closed statement
// has consumed yet.
func (r *repository) FindUnbilledAdjustmentsInRange(ctx context.Context, staffID string, start, end time.Time) ([]PayAdjustment, error) {
	var adjustments []PayAdjustment
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("date >= ? AND date <= ?", start, end).
		Where("staff_pay_statement_id IS NULL").
		Order("date ASC").
		Find(&adjustments).Error
	return adjustments, err
}

func (r *repository) FindServiceExecutionsInRange(ctx context.Context, staffID string, start, end time.Time) ([]ServiceExecution, error) {
	var executions []ServiceExecution
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("executed_at >= ? AND executed_at <= ?", start, end).
		Order("executed_at ASC").
		Find(&executions).Error
	return executions, err
}
