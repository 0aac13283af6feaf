package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	mockRepo "billing/internal/mocks/repository"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type discountServiceFixtures struct {
	service      usecase.DiscountUsecase
	tx           *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	discountRepo *mockRepo.MockDiscountRepository
	productRepo  *mockRepo.MockProductRepository
	promoRepo    *mockRepo.MockPromoCodeRepository
}

func createTestDiscountService(t *testing.T) discountServiceFixtures {
	fx := discountServiceFixtures{
		tx:           newTxManager(t),
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		discountRepo: mockRepo.NewMockDiscountRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		promoRepo:    mockRepo.NewMockPromoCodeRepository(t),
	}
	fx.service = NewDiscountService(DiscountServiceParams{
		TxManager:    fx.tx,
		AccountRepo:  fx.accountRepo,
		DiscountRepo: fx.discountRepo,
		ProductRepo:  fx.productRepo,
		PromoRepo:    fx.promoRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func validTerms() entity.DiscountTerms {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	return entity.DiscountTerms{
		DiscountType: entity.DiscountPercentage,
		Value:        decimal.NewFromInt(20),
		MaxDiscount:  decimal.NewFromInt(100),
		ValidFrom:    from,
		ValidTo:      from.AddDate(0, 1, 0),
		Status:       true,
	}
}

func TestValidateTerms(t *testing.T) {
	inverted := validTerms()
	inverted.ValidFrom, inverted.ValidTo = inverted.ValidTo, inverted.ValidFrom
	tooMuch := validTerms()
	tooMuch.Value = decimal.NewFromInt(150)
	flatLarge := validTerms()
	flatLarge.DiscountType = entity.DiscountFlat
	flatLarge.Value = decimal.NewFromInt(150)
	unknown := validTerms()
	unknown.DiscountType = "BuyOneGetOne"

	tests := []struct {
		name    string
		terms   entity.DiscountTerms
		wantErr error
	}{
		{name: "valid", terms: validTerms()},
		{name: "flat above 100", terms: flatLarge},
		{name: "window inverted", terms: inverted, wantErr: domainerrors.ErrInvalidDiscountWindow},
		{name: "percentage above 100", terms: tooMuch, wantErr: domainerrors.ErrInvalidDiscountValue},
		{name: "unknown type", terms: unknown, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTerms(tt.terms)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestDiscountService_GetMerchantDiscount_HidesOtherMerchants(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	discount := &entity.MerchantDiscount{ID: uuid.New(), MerchantID: owner, DiscountTerms: validTerms()}

	fx.discountRepo.On("FindMerchantDiscountByID", ctx, discount.ID).Return(discount, nil)

	_, err := fx.service.GetMerchantDiscount(ctx, &other, discount.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiscountNotFound))

	got, err := fx.service.GetMerchantDiscount(ctx, nil, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, discount, got)
}

func TestDiscountService_SetMerchantDiscountStatus(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()
	owner := uuid.New()
	discount := &entity.MerchantDiscount{ID: uuid.New(), MerchantID: owner, DiscountTerms: validTerms()}

	fx.discountRepo.On("FindMerchantDiscountByID", ctx, discount.ID).Return(discount, nil)
	fx.discountRepo.On("UpdateMerchantDiscountStatus", ctx, discount.ID, false).Return(nil)

	require.NoError(t, fx.service.SetMerchantDiscountStatus(ctx, &owner, discount.ID, false))
}

func TestDiscountService_CreateMerchantDiscount_UnknownMerchant(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()
	merchantID := uuid.New()

	fx.accountRepo.On("FindAccount", ctx, entity.MerchantRef(merchantID)).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.CreateMerchantDiscount(ctx, merchantID, &usecase.MerchantDiscountInput{Title: "Weekend", DiscountTerms: validTerms()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantNotFound))
}

func TestDiscountService_CreateProductDiscount_AttachesProducts(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	repos := fx.tx.Factory

	fx.productRepo.On("FindProductsByIDs", ctx, []uuid.UUID{p1, p2, p1}).Return([]*entity.Product{
		{ID: p1, MerchantID: merchantID},
		{ID: p2, MerchantID: merchantID},
	}, nil)
	repos.Discount.On("CreateProductDiscount", ctx, mock.AnythingOfType("*entity.ProductDiscount")).Return(nil)
	repos.Product.On("AttachDiscount", ctx, mock.AnythingOfType("uuid.UUID"), []uuid.UUID{p1, p2}).Return(int64(2), nil)

	discount, err := fx.service.CreateProductDiscount(ctx, merchantID, &usecase.ProductDiscountInput{
		Title:         "Combo",
		ProductIDs:    []uuid.UUID{p1, p2, p1},
		DiscountTerms: validTerms(),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1, p2}, discount.ProductIDs)
	assert.Equal(t, 1, fx.tx.Calls)
}

func TestDiscountService_CreateProductDiscount_ForeignProduct(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	foreign := uuid.New()

	fx.productRepo.On("FindProductsByIDs", ctx, []uuid.UUID{foreign}).Return([]*entity.Product{
		{ID: foreign, MerchantID: uuid.New()},
	}, nil)

	_, err := fx.service.CreateProductDiscount(ctx, merchantID, &usecase.ProductDiscountInput{
		ProductIDs:    []uuid.UUID{foreign},
		DiscountTerms: validTerms(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
	assert.Zero(t, fx.tx.Calls)
}

func TestDiscountService_CreateProductDiscount_KeepsExistingDiscount(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	current := uuid.New()
	free, taken := uuid.New(), uuid.New()

	t.Run("product already discounted", func(t *testing.T) {
		fx := createTestDiscountService(t)

		fx.productRepo.On("FindProductsByIDs", ctx, []uuid.UUID{free, taken}).Return([]*entity.Product{
			{ID: free, MerchantID: merchantID},
			{ID: taken, MerchantID: merchantID, DiscountID: &current},
		}, nil)

		_, err := fx.service.CreateProductDiscount(ctx, merchantID, &usecase.ProductDiscountInput{
			Title:         "Combo",
			ProductIDs:    []uuid.UUID{free, taken},
			DiscountTerms: validTerms(),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyDiscounted))
		assert.Contains(t, err.Error(), current.String())
		assert.Zero(t, fx.tx.Calls)
	})

	t.Run("product claimed while attaching", func(t *testing.T) {
		fx := createTestDiscountService(t)
		repos := fx.tx.Factory

		fx.productRepo.On("FindProductsByIDs", ctx, []uuid.UUID{free, taken}).Return([]*entity.Product{
			{ID: free, MerchantID: merchantID},
			{ID: taken, MerchantID: merchantID},
		}, nil)
		repos.Discount.On("CreateProductDiscount", ctx, mock.AnythingOfType("*entity.ProductDiscount")).Return(nil)
		repos.Product.On("AttachDiscount", ctx, mock.AnythingOfType("uuid.UUID"), []uuid.UUID{free, taken}).Return(int64(1), nil)

		_, err := fx.service.CreateProductDiscount(ctx, merchantID, &usecase.ProductDiscountInput{
			Title:         "Combo",
			ProductIDs:    []uuid.UUID{free, taken},
			DiscountTerms: validTerms(),
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
		assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyDiscounted))
	})
}

func TestDiscountService_DeleteProductDiscount_DetachesFirst(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	discount := &entity.ProductDiscount{ID: uuid.New(), MerchantID: merchantID}
	repos := fx.tx.Factory

	fx.discountRepo.On("FindProductDiscountByID", ctx, discount.ID).Return(discount, nil)
	repos.Product.On("DetachDiscounts", ctx, []uuid.UUID{discount.ID}).Return(int64(3), nil)
	repos.Discount.On("DeleteProductDiscounts", ctx, []uuid.UUID{discount.ID}).Return(int64(1), nil)

	require.NoError(t, fx.service.DeleteProductDiscount(ctx, &merchantID, discount.ID))
}

func TestDiscountService_CreatePromoCode(t *testing.T) {
	fx := createTestDiscountService(t)

	ctx := context.Background()

	fx.promoRepo.On("CreatePromoCode", ctx, mock.MatchedBy(func(p *entity.PromoCode) bool {
		return p.Code == "WELCOME50"
	})).Return(nil).Once()
	fx.promoRepo.On("CreatePromoCode", ctx, mock.AnythingOfType("*entity.PromoCode")).Return(repository.ErrDuplicatePromoCode).Once()

	promo, err := fx.service.CreatePromoCode(ctx, &usecase.PromoCodeInput{Code: " welcome50 ", DiscountTerms: validTerms()})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME50", promo.Code)

	_, err = fx.service.CreatePromoCode(ctx, &usecase.PromoCodeInput{Code: "WELCOME50", DiscountTerms: validTerms()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPromoCodeExists))
}
