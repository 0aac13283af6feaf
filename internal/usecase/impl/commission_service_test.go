package impl

import (
	"context"
	"testing"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	mockRepo "billing/internal/mocks/repository"
	mockUsecase "billing/internal/mocks/usecase"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commissionServiceFixtures struct {
	service        usecase.CommissionUsecase
	tx             *mockRepo.MockTransactionManager
	commissionRepo *mockRepo.MockCommissionRepository
	activity       *mockUsecase.MockActivityUsecase
}

func createTestCommissionService(t *testing.T) commissionServiceFixtures {
	fx := commissionServiceFixtures{
		tx:             newTxManager(t),
		commissionRepo: mockRepo.NewMockCommissionRepository(t),
		activity:       mockUsecase.NewMockActivityUsecase(t),
	}
	fx.service = NewCommissionService(CommissionServiceParams{
		TxManager:      fx.tx,
		CommissionRepo: fx.commissionRepo,
		Activity:       fx.activity,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestCommissionService_AddCommission(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	input := &usecase.CommissionInput{CommissionType: entity.CommissionPercentage, CommissionValue: decimal.NewFromInt(15)}
	repos := fx.tx.Factory

	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant, PricingVersion: 3}, nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{}, nil)
	repos.Commission.On("CreateCommission", ctx, mock.AnythingOfType("*entity.Commission")).Return(nil)
	repos.Pricing.On("AddReference", ctx, mock.MatchedBy(func(ref *entity.PricingReference) bool {
		return ref.ModelType == entity.PricingModelCommission && ref.Owner == merchant
	})).Return(nil)
	repos.Account.On("BumpPricingVersion", ctx, merchant, int64(3)).Return(nil)
	fx.activity.On("Record", ctx, merchant, "Commission added", mock.Anything).Return()

	commission, err := fx.service.AddCommission(ctx, merchant.ID, input)
	require.NoError(t, err)
	assert.Equal(t, merchant.ID, commission.MerchantID)
	assert.Equal(t, entity.CommissionPercentage, commission.CommissionType)
	assert.True(t, decimal.NewFromInt(15).Equal(commission.CommissionValue))
}

func TestCommissionService_AddCommission_RejectsSubscribedMerchant(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	input := &usecase.CommissionInput{CommissionType: entity.CommissionFixed, CommissionValue: decimal.NewFromInt(20)}
	repos := fx.tx.Factory

	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant}, nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{
		{Owner: merchant, ModelType: entity.PricingModelSubscription, ModelID: uuid.New()},
	}, nil)

	_, err := fx.service.AddCommission(ctx, merchant.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantOnSubscription))
	repos.Commission.AssertNotCalled(t, "CreateCommission", mock.Anything, mock.Anything)
}

func TestCommissionService_AddCommission_RejectsSecondCommission(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	input := &usecase.CommissionInput{CommissionType: entity.CommissionFixed, CommissionValue: decimal.NewFromInt(20)}
	repos := fx.tx.Factory

	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant}, nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{
		{Owner: merchant, ModelType: entity.PricingModelCommission, ModelID: uuid.New()},
	}, nil)

	_, err := fx.service.AddCommission(ctx, merchant.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommissionExists))
}

func TestValidateCommission(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CommissionInput
		wantErr error
	}{
		{name: "percentage at the limit", input: &usecase.CommissionInput{CommissionType: entity.CommissionPercentage, CommissionValue: decimal.NewFromInt(100)}},
		{name: "fixed amount", input: &usecase.CommissionInput{CommissionType: entity.CommissionFixed, CommissionValue: decimal.NewFromFloat(4.5)}},
		{name: "percentage above 100", input: &usecase.CommissionInput{CommissionType: entity.CommissionPercentage, CommissionValue: decimal.NewFromInt(101)}, wantErr: domainerrors.ErrInvalidCommissionValue},
		{name: "zero value", input: &usecase.CommissionInput{CommissionType: entity.CommissionFixed, CommissionValue: decimal.Zero}, wantErr: domainerrors.ErrInvalidCommissionValue},
		{name: "unknown type", input: &usecase.CommissionInput{CommissionType: "Tiered", CommissionValue: decimal.NewFromInt(5)}, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing input", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCommission(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestCommissionService_EditCommission(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	existing := &entity.Commission{
		ID: uuid.New(), MerchantID: uuid.New(),
		CommissionType: entity.CommissionFixed, CommissionValue: decimal.NewFromInt(10),
	}
	input := &usecase.CommissionInput{CommissionType: entity.CommissionPercentage, CommissionValue: decimal.NewFromInt(8)}

	fx.commissionRepo.On("FindCommissionByID", ctx, existing.ID).Return(existing, nil)
	fx.commissionRepo.On("UpdateCommission", ctx, existing).Return(nil)
	fx.activity.On("Record", ctx, entity.MerchantRef(existing.MerchantID), "Commission updated", mock.Anything).Return()

	updated, err := fx.service.EditCommission(ctx, existing.ID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.CommissionPercentage, updated.CommissionType)
	assert.True(t, decimal.NewFromInt(8).Equal(updated.CommissionValue))
}

func TestCommissionService_GetCommission_NotFound(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	merchantID := uuid.New()

	fx.commissionRepo.On("FindCommissionByMerchant", ctx, merchantID).Return(nil, repository.ErrCommissionNotFound)

	_, err := fx.service.GetCommission(ctx, merchantID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommissionNotFound))
}
