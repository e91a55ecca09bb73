package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository deliberately exposes no Update or Delete: the entry log is
// append-only and the balance is always derived from it.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *Entry) error
	FindAllByCustomer(ctx context.Context, customerID string) ([]Entry, error)
	FindAllByInvoice(ctx context.Context, invoiceID string) ([]Entry, error)
	SumBalance(ctx context.Context, customerID string) (decimal.Decimal, error)
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

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAllByCustomer(ctx context.Context, customerID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindAllByInvoice(ctx context.Context, invoiceID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// SumBalance recomputes the balance from the full entry history on every read.
// There is no stored running balance to drift out of sync.
func (r *repository) SumBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN direction = ? THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE customer_id = ?
	`, DirectionDebit, customerID).Scan(&balance).Error
	return balance, err
}
