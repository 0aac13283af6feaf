package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType is how a discount reduces an order.
type DiscountType string

const (
	// DiscountFlat takes a fixed amount off.
	DiscountFlat DiscountType = "Flat"
	// DiscountPercentage takes a percentage off, bounded by MaxDiscount.
	DiscountPercentage DiscountType = "Percentage"
)

// IsValid checks if the DiscountType is a valid value.
func (t DiscountType) IsValid() bool {
	return t == DiscountFlat || t == DiscountPercentage
}

// DiscountTerms holds the fields shared by every kind of discount.
type DiscountTerms struct {
	DiscountType  DiscountType    `json:"discount_type"`
	Value         decimal.Decimal `json:"value"`
	MaxDiscount   decimal.Decimal `json:"max_discount"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	ValidFrom     time.Time       `json:"valid_from"`
	ValidTo       time.Time       `json:"valid_to"`
	Status        bool            `json:"status"` // Manual on/off switch, independent of the date window.
}

// Expired reports whether the validity window closed before now.
func (t DiscountTerms) Expired(now time.Time) bool {
	return t.ValidTo.Before(now)
}

// MerchantDiscount is a store-wide discount.
type MerchantDiscount struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id"`
	Title      string    `json:"title"`
	DiscountTerms
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductDiscount is a discount attached to a set of a merchant's products.
type ProductDiscount struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id"`
	Title      string    `json:"title"`
	DiscountTerms
	ProductIDs []uuid.UUID `json:"product_ids,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// PromoCode is a platform-wide code a customer enters at checkout.
type PromoCode struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	DiscountTerms
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is the billing view of a catalog item: only what discounts need.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	MerchantID uuid.UUID       `json:"merchant_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	DiscountID *uuid.UUID      `json:"discount_id,omitempty"`
}
