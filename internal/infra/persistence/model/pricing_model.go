package model

import (
	"time"

	"github.com/google/uuid"
)

// PricingReferenceModel is the GORM-specific struct for the 'pricing_references' table.
// Rows of one owner, ordered by created_at, form the owner's pricing collection.
type PricingReferenceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerType string    `gorm:"type:varchar(16);not null;index:idx_pricing_owner,priority:1"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_pricing_owner,priority:2"`
	ModelType string    `gorm:"type:varchar(16);not null"`
	ModelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null;index:idx_pricing_owner,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (PricingReferenceModel) TableName() string {
	return "pricing_references"
}
