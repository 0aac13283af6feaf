package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionPlanModel is the GORM-specific struct for the 'subscription_plans' table.
type SubscriptionPlanModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Audience     string          `gorm:"type:varchar(16);not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DurationDays int             `gorm:"not null"`
	TaxID        *uuid.UUID      `gorm:"type:uuid"`
	Description  string          `gorm:"type:text"`
	IsActive     bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionPlanModel) TableName() string {
	return "subscription_plans"
}
