package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel is the GORM-specific struct for the 'merchants' table.
// Only the columns billing reads or writes are mapped.
type MerchantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255)"`
	Phone          string    `gorm:"type:varchar(32)"`
	OpenedToday    bool      `gorm:"not null;default:false;index"`
	PricingVersion int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255)"`
	Phone          string    `gorm:"type:varchar(32)"`
	PricingVersion int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
