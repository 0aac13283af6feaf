package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionType is how the platform fee on an order is computed.
type CommissionType string

const (
	// CommissionFixed charges a flat amount per order.
	CommissionFixed CommissionType = "Fixed"
	// CommissionPercentage charges a percentage of the order subtotal.
	CommissionPercentage CommissionType = "Percentage"
)

// IsValid checks if the CommissionType is a valid value.
func (t CommissionType) IsValid() bool {
	return t == CommissionFixed || t == CommissionPercentage
}

// Commission is the per-merchant commission agreement. At most one exists per merchant.
type Commission struct {
	ID              uuid.UUID       `json:"id"`
	MerchantID      uuid.UUID       `json:"merchant_id"`
	CommissionType  CommissionType  `json:"commission_type"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

var hundred = decimal.NewFromInt(100)

// Charge returns the platform fee for an order subtotal, rounded to two places
// and never more than the subtotal itself.
func (c *Commission) Charge(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsNegative() || subtotal.IsZero() {
		return decimal.Zero
	}

	var fee decimal.Decimal
	switch c.CommissionType {
	case CommissionFixed:
		fee = c.CommissionValue
	case CommissionPercentage:
		fee = subtotal.Mul(c.CommissionValue).Div(hundred)
	default:
		return decimal.Zero
	}

	fee = fee.Round(2)
	if fee.GreaterThan(subtotal) {
		return subtotal
	}

	return fee
}
