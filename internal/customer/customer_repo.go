package customer

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Exists(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Customer, error)
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

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}
