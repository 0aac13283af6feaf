package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeQuote is the platform fee due on an order subtotal.
type ChargeQuote struct {
	MerchantID uuid.UUID               `json:"merchant_id"`
	Subtotal   decimal.Decimal         `json:"subtotal"`
	Mode       entity.PricingModelType `json:"mode,omitempty"` // Empty when no pricing is configured.
	Commission decimal.Decimal         `json:"commission"`
}

// PricingUsecase resolves the billing mode in force for a user.
type PricingUsecase interface {
	// CurrentPricing returns the commission or the active subscription of the user.
	// Returns ErrNoPricingConfigured when the user has neither.
	CurrentPricing(ctx context.Context, user entity.UserRef) (*entity.PricingState, error)

	// QuoteOrderCharge computes the commission the platform takes on an order.
	QuoteOrderCharge(ctx context.Context, merchantID uuid.UUID, subtotal decimal.Decimal) (*ChargeQuote, error)
}
