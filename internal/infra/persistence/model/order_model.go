package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel maps the columns of the 'orders' table used for revenue reporting.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           string          `gorm:"type:varchar(16);not null"`
	GrandTotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt        time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
