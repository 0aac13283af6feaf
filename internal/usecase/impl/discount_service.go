package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type discountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	discountRepo repository.DiscountRepository
	productRepo  repository.ProductRepository
	promoRepo    repository.PromoCodeRepository
	logger       *slog.Logger
}

// DiscountServiceParams holds dependencies for DiscountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	DiscountRepo repository.DiscountRepository
	ProductRepo  repository.ProductRepository
	PromoRepo    repository.PromoCodeRepository
	Logger       *slog.Logger
}

// NewDiscountService creates the discount and promo code service.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		discountRepo: params.DiscountRepo,
		productRepo:  params.ProductRepo,
		promoRepo:    params.PromoRepo,
		logger:       params.Logger,
	}
}

func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *discountService) CreateMerchantDiscount(ctx context.Context, merchantID uuid.UUID, input *usecase.MerchantDiscountInput) (*entity.MerchantDiscount, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "discount is required")
	}
	if err := validateTerms(input.DiscountTerms); err != nil {
		return nil, err
	}
	if err := srv.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}

	now := nowFunc()
	discount := &entity.MerchantDiscount{
		ID:            uuid.New(),
		MerchantID:    merchantID,
		Title:         strings.TrimSpace(input.Title),
		DiscountTerms: input.DiscountTerms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := srv.discountRepo.CreateMerchantDiscount(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to create merchant discount")
	}

	return discount, nil
}

func (srv *discountService) ListMerchantDiscounts(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantDiscount, error) {
	discounts, err := srv.discountRepo.ListMerchantDiscounts(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant discounts")
	}

	return discounts, nil
}

func (srv *discountService) GetMerchantDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID) (*entity.MerchantDiscount, error) {
	discount, err := srv.discountRepo.FindMerchantDiscountByID(ctx, id)
	if err != nil {
		return nil, discountError(err, id)
	}
	// Other merchants' discounts are reported as missing.
	if merchantID != nil && discount.MerchantID != *merchantID {
		return nil, errors.Wrap(domainerrors.ErrDiscountNotFound, id.String())
	}

	return discount, nil
}

func (srv *discountService) UpdateMerchantDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID, input *usecase.MerchantDiscountInput) (*entity.MerchantDiscount, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "discount is required")
	}
	if err := validateTerms(input.DiscountTerms); err != nil {
		return nil, err
	}

	discount, err := srv.GetMerchantDiscount(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}

	discount.Title = strings.TrimSpace(input.Title)
	discount.DiscountTerms = input.DiscountTerms
	discount.UpdatedAt = nowFunc()

	if err := srv.discountRepo.UpdateMerchantDiscount(ctx, discount); err != nil {
		return nil, discountError(err, id)
	}

	return discount, nil
}

// SetMerchantDiscountStatus flips the manual switch without touching the validity window.
func (srv *discountService) SetMerchantDiscountStatus(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID, status bool) error {
	if _, err := srv.GetMerchantDiscount(ctx, merchantID, id); err != nil {
		return err
	}

	if err := srv.discountRepo.UpdateMerchantDiscountStatus(ctx, id, status); err != nil {
		return discountError(err, id)
	}

	return nil
}

func (srv *discountService) DeleteMerchantDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID) error {
	if _, err := srv.GetMerchantDiscount(ctx, merchantID, id); err != nil {
		return err
	}

	if err := srv.discountRepo.DeleteMerchantDiscount(ctx, id); err != nil {
		return discountError(err, id)
	}

	return nil
}

// CreateProductDiscount creates the discount and points the merchant's products at it in one transaction.
func (srv *discountService) CreateProductDiscount(ctx context.Context, merchantID uuid.UUID, input *usecase.ProductDiscountInput) (*entity.ProductDiscount, error) {
	if input == nil || len(input.ProductIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one product is required")
	}
	if err := validateTerms(input.DiscountTerms); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindProductsByIDs(ctx, input.ProductIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}
	if len(products) != len(uniqueIDs(input.ProductIDs)) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown product in discount")
	}
	for _, product := range products {
		if product.MerchantID != merchantID {
			return nil, errors.Wrap(domainerrors.ErrProductOwnershipViolation, product.ID.String())
		}
		if product.DiscountID != nil {
			return nil, errors.Wrapf(domainerrors.ErrProductAlreadyDiscounted, "product %s has discount %s", product.ID, *product.DiscountID)
		}
	}

	now := nowFunc()
	discount := &entity.ProductDiscount{
		ID:            uuid.New(),
		MerchantID:    merchantID,
		Title:         strings.TrimSpace(input.Title),
		DiscountTerms: input.DiscountTerms,
		ProductIDs:    uniqueIDs(input.ProductIDs),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewDiscountRepository().CreateProductDiscount(ctx, discount); err != nil {
			return errors.Wrap(err, "failed to create product discount")
		}
		attached, err := repos.NewProductRepository().AttachDiscount(ctx, discount.ID, discount.ProductIDs)
		if err != nil {
			return errors.Wrap(err, "failed to attach discount")
		}
		// Another discount claimed one of the products after they were read.
		if attached != int64(len(discount.ProductIDs)) {
			return errors.Wrap(domainerrors.ErrProductAlreadyDiscounted, "products changed while attaching")
		}

		return nil
	})
	if err != nil {
		return nil, transactionError(err)
	}

	srv.log(ctx).Debug("Product discount created", slog.Any("discountID", discount.ID), slog.Int("products", len(discount.ProductIDs)))

	return discount, nil
}

// DeleteProductDiscount detaches the discount from its products, then removes it.
func (srv *discountService) DeleteProductDiscount(ctx context.Context, merchantID *uuid.UUID, id uuid.UUID) error {
	discount, err := srv.discountRepo.FindProductDiscountByID(ctx, id)
	if err != nil {
		return discountError(err, id)
	}
	if merchantID != nil && discount.MerchantID != *merchantID {
		return errors.Wrap(domainerrors.ErrDiscountNotFound, id.String())
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		ids := []uuid.UUID{id}
		if _, err := repos.NewProductRepository().DetachDiscounts(ctx, ids); err != nil {
			return errors.Wrap(err, "failed to detach discount")
		}
		if _, err := repos.NewDiscountRepository().DeleteProductDiscounts(ctx, ids); err != nil {
			return errors.Wrap(err, "failed to delete product discount")
		}

		return nil
	})
	if err != nil {
		return transactionError(err)
	}

	return nil
}

func (srv *discountService) CreatePromoCode(ctx context.Context, input *usecase.PromoCodeInput) (*entity.PromoCode, error) {
	code, err := validatePromoCode(input)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	promo := &entity.PromoCode{
		ID:            uuid.New(),
		Code:          code,
		DiscountTerms: input.DiscountTerms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := srv.promoRepo.CreatePromoCode(ctx, promo); err != nil {
		return nil, promoCodeError(err, code)
	}

	return promo, nil
}

func (srv *discountService) ListPromoCodes(ctx context.Context) ([]*entity.PromoCode, error) {
	promos, err := srv.promoRepo.ListPromoCodes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	return promos, nil
}

func (srv *discountService) UpdatePromoCode(ctx context.Context, id uuid.UUID, input *usecase.PromoCodeInput) (*entity.PromoCode, error) {
	code, err := validatePromoCode(input)
	if err != nil {
		return nil, err
	}

	promo, err := srv.promoRepo.FindPromoCodeByID(ctx, id)
	if err != nil {
		return nil, promoCodeError(err, id.String())
	}

	promo.Code = code
	promo.DiscountTerms = input.DiscountTerms
	promo.UpdatedAt = nowFunc()

	if err := srv.promoRepo.UpdatePromoCode(ctx, promo); err != nil {
		return nil, promoCodeError(err, code)
	}

	return promo, nil
}

func (srv *discountService) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	if err := srv.promoRepo.DeletePromoCode(ctx, id); err != nil {
		return promoCodeError(err, id.String())
	}

	return nil
}

func (srv *discountService) requireMerchant(ctx context.Context, merchantID uuid.UUID) error {
	ref := entity.MerchantRef(merchantID)
	if _, err := srv.accountRepo.FindAccount(ctx, ref); err != nil {
		return accountError(ref, err)
	}

	return nil
}

func validateTerms(terms entity.DiscountTerms) error {
	if !terms.DiscountType.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "discount type must be Flat or Percentage")
	}
	if !terms.ValidFrom.Before(terms.ValidTo) {
		return errors.WithStack(domainerrors.ErrInvalidDiscountWindow)
	}
	if !terms.Value.IsPositive() {
		return errors.Wrap(domainerrors.ErrInvalidDiscountValue, "value must be positive")
	}
	if terms.DiscountType == entity.DiscountPercentage && terms.Value.GreaterThan(maxPercentage) {
		return errors.Wrap(domainerrors.ErrInvalidDiscountValue, "percentage must not exceed 100")
	}
	if terms.MaxDiscount.IsNegative() || terms.MinOrderValue.IsNegative() {
		return errors.Wrap(domainerrors.ErrInvalidDiscountValue, "limits must not be negative")
	}

	return nil
}

// validatePromoCode checks the input and returns the normalized code.
func validatePromoCode(input *usecase.PromoCodeInput) (string, error) {
	if input == nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "promo code is required")
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "code is required")
	}

	return code, validateTerms(input.DiscountTerms)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

func discountError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrDiscountNotFound) {
		return errors.Wrap(domainerrors.ErrDiscountNotFound, id.String())
	}

	return errors.Wrap(err, "discount repository")
}

func promoCodeError(err error, key string) error {
	switch {
	case errors.Is(err, repository.ErrPromoCodeNotFound):
		return errors.Wrap(domainerrors.ErrPromoCodeNotFound, key)
	case errors.Is(err, repository.ErrDuplicatePromoCode):
		return errors.Wrap(domainerrors.ErrPromoCodeExists, key)
	default:
		return errors.Wrap(err, "promo code repository")
	}
}
