package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// MerchantDiscountInput is the editable part of a merchant discount.
type MerchantDiscountInput struct {
	Title string
	entity.DiscountTerms
}

// ProductDiscountInput creates a discount and attaches it to products.
type ProductDiscountInput struct {
	Title      string
	ProductIDs []uuid.UUID
	entity.DiscountTerms
}

// PromoCodeInput is the editable part of a promo code.
type PromoCodeInput struct {
	Code string
	entity.DiscountTerms
}

// DiscountUsecase manages merchant discounts, product discounts and promo codes.
// Merchant scoped calls take the owning merchant and reject other merchants' discounts.
type DiscountUsecase interface {
	CreateMerchantDiscount(ctx context.Context, merchantID uuid.UUID, input *MerchantDiscountInput) (*entity.MerchantDiscount, error)
	ListMerchantDiscounts(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantDiscount, error)
	// GetMerchantDiscount returns a discount; a nil merchantID skips the ownership check.
	GetMerchantDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID) (*entity.MerchantDiscount, error)
	UpdateMerchantDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID, input *MerchantDiscountInput) (*entity.MerchantDiscount, error)
	SetMerchantDiscountStatus(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID, status bool) error
	DeleteMerchantDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID) error

	CreateProductDiscount(ctx context.Context, merchantID uuid.UUID, input *ProductDiscountInput) (*entity.ProductDiscount, error)
	// DeleteProductDiscount detaches the discount from its products and removes it.
	DeleteProductDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID) error

	CreatePromoCode(ctx context.Context, input *PromoCodeInput) (*entity.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]*entity.PromoCode, error)
	UpdatePromoCode(ctx context.Context, id uuid.UUID, input *PromoCodeInput) (*entity.PromoCode, error)
	DeletePromoCode(ctx context.Context, id uuid.UUID) error
}
