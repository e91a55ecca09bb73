package appointment

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindUnbilledForCustomer(ctx context.Context, customerID string, ids []string) ([]Appointment, error)
	MarkInvoiced(ctx context.Context, ids []string) (int64, error)
	Release(ctx context.Context, ids []string) error
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

func (r *repository) FindUnbilledForCustomer(ctx context.Context, customerID string, ids []string) ([]Appointment, error) {
	var appointments []Appointment
	err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id IN ?", ids).
		Where("customer_id = ?", customerID).
		Where("billing_status = ?", BillingStatusUnbilled).
		Find(&appointments).Error
	return appointments, err
}

// MarkInvoiced flips UNBILLED rows to INVOICED and reports how many rows it
// actually claimed. Callers compare that count against the requested set
// inside the same transaction to detect concurrent claims.
func (r *repository) MarkInvoiced(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Appointment{}).
		Where("id IN ?", ids).
		Where("billing_status = ?", BillingStatusUnbilled).
		Update("billing_status", BillingStatusInvoiced)
	return res.RowsAffected, res.Error
}

func (r *repository) Release(ctx context.Context, ids []string) error {
	return r.db.WithContext(ctx).
		Model(&Appointment{}).
		Where("id IN ?", ids).
		Update("billing_status", BillingStatusUnbilled).Error
}
