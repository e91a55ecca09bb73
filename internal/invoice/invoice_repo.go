package invoice

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, inv *Invoice) error
	FindAll(ctx context.Context, customerID, status string) ([]Invoice, error)
	FindByID(ctx context.Context, id string) (*Invoice, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Invoice, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	CreateLine(ctx context.Context, line *Line) error
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

func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindAll(ctx context.Context, customerID, status string) ([]Invoice, error) {
	db := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		Order("created_at DESC")

	if customerID != "" {
		db = db.Where("customer_id = ?", customerID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var invoices []Invoice
	err := db.Find(&invoices).Error
	return invoices, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		First(&inv, "id = ?", id).Error
	return &inv, err
}

// FindByIDForUpdate locks the invoice row so concurrent lifecycle transitions
// serialize on the database.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines").
		First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	return r.db.WithContext(ctx).
		Model(&Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CreateLine(ctx context.Context, line *Line) error {
	return r.db.WithContext(ctx).Create(line).Error
}
