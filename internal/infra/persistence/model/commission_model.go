package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionModel is the GORM-specific struct for the 'commissions' table.
type CommissionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CommissionType  string          `gorm:"type:varchar(16);not null"`
	CommissionValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommissionModel) TableName() string {
	return "commissions"
}
