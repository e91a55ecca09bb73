package transport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindCompletedLegsForStaff(ctx context.Context, staffID string, start, end time.Time) ([]LegExecution, error)
	ReplaceActiveSnapshot(ctx context.Context, quoteID string, snapshot *PricingSnapshot) error
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

func (r *repository) FindCompletedLegsForStaff(ctx context.Context, staffID string, start, end time.Time) ([]LegExecution, error) {
	var legs []LegExecution
	err := r.db.WithContext(ctx).
		Preload("Snapshot").
		Where("staff_id = ?", staffID).
		Where("completed_at >= ? AND completed_at <= ?", start, end).
		Order("completed_at ASC").
		Find(&legs).Error
	return legs, err
}

// ReplaceActiveSnapshot inserts the new snapshot and repoints the quote in
// one transaction. The old snapshot row stays untouched.
func (r *repository) ReplaceActiveSnapshot(ctx context.Context, quoteID string, snapshot *PricingSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if snapshot.ID == uuid.Nil {
			snapshot.ID = uuid.New()
		}
		if err := tx.Create(snapshot).Error; err != nil {
			return err
		}
		return tx.Model(&Quote{}).
			Where("id = ?", quoteID).
			Update("active_snapshot_id", snapshot.ID).Error
	})
}
