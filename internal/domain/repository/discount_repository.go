package repository

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for discount persistence.
var (
	// ErrDiscountNotFound is returned when a merchant or product discount is not found.
	ErrDiscountNotFound = errors.New("discount not found")
	// ErrPromoCodeNotFound is returned when a promo code is not found.
	ErrPromoCodeNotFound = errors.New("promo code not found")
	// ErrDuplicatePromoCode is returned when the code is already taken.
	ErrDuplicatePromoCode = errors.New("promo code already exists")
)

// DiscountRepository manages merchant-level and product-level discounts.
type DiscountRepository interface {
	CreateMerchantDiscount(ctx context.Context, discount *entity.MerchantDiscount) error
	FindMerchantDiscountByID(ctx context.Context, id uuid.UUID) (*entity.MerchantDiscount, error)
	ListMerchantDiscounts(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantDiscount, error)
	UpdateMerchantDiscount(ctx context.Context, discount *entity.MerchantDiscount) error
	UpdateMerchantDiscountStatus(ctx context.Context, id uuid.UUID, status bool) error
	DeleteMerchantDiscount(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredMerchantDiscounts removes merchant discounts whose window closed before now.
	DeleteExpiredMerchantDiscounts(ctx context.Context, now time.Time) (int64, error)

	CreateProductDiscount(ctx context.Context, discount *entity.ProductDiscount) error
	FindProductDiscountByID(ctx context.Context, id uuid.UUID) (*entity.ProductDiscount, error)
	DeleteProductDiscounts(ctx context.Context, ids []uuid.UUID) (int64, error)

	// FindExpiredProductDiscountIDs lists product discounts whose window closed before now.
	FindExpiredProductDiscountIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// ProductRepository exposes the discount links of catalog products.
type ProductRepository interface {
	// FindProductsByIDs retrieves the products with the given ids.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// AttachDiscount points the given products at a discount. Products that
	// already carry a discount are left untouched and not counted.
	AttachDiscount(ctx context.Context, discountID uuid.UUID, productIDs []uuid.UUID) (int64, error)

	// DetachDiscounts nulls the discount of every product pointing at one of discountIDs.
	DetachDiscounts(ctx context.Context, discountIDs []uuid.UUID) (int64, error)
}

// PromoCodeRepository defines the interface for platform promo codes.
type PromoCodeRepository interface {
	CreatePromoCode(ctx context.Context, promo *entity.PromoCode) error
	FindPromoCodeByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]*entity.PromoCode, error)
	UpdatePromoCode(ctx context.Context, promo *entity.PromoCode) error
	DeletePromoCode(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredPromoCodes removes promo codes whose window closed before now.
	DeleteExpiredPromoCodes(ctx context.Context, now time.Time) (int64, error)
}
