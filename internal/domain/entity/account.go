package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is the billing view of a merchant account.
// Profile fields beyond contact data are owned by other services.
type Merchant struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	OpenedToday    bool      `json:"opened_today"`    // Set when the store opens; reset by the daily rollup.
	PricingVersion int64     `json:"pricing_version"` // Bumped on every pricing change; used for compare-and-swap.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Customer is the billing view of a customer account.
type Customer struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PricingVersion int64     `json:"pricing_version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Account is the common shape of a pricing owner, regardless of its collection.
type Account struct {
	Ref            UserRef
	Name           string
	PricingVersion int64
}
