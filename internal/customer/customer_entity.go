package customer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is owned by the client-portal service; billing only reads it.
type Customer struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Name      string         `gorm:"column:name"`
	Email     *string        `gorm:"column:email"`
	Phone     *string        `gorm:"column:phone"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Customer) TableName() string {
	return "customers"
}
