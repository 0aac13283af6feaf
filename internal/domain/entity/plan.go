package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionPlan is a catalog entry a merchant or customer can purchase.
type SubscriptionPlan struct {
	ID           uuid.UUID       `json:"id"`
	Audience     UserType        `json:"audience"` // Merchant or Customer.
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	DurationDays int             `json:"duration_days"`
	TaxID        *uuid.UUID      `json:"tax_id,omitempty"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
