package impl

import (
	"context"
	"log/slog"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/billing"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var maxPercentage = decimal.NewFromInt(100)

type commissionService struct {
	txManager      repository.TransactionManager
	commissionRepo repository.CommissionRepository
	activity       usecase.ActivityUsecase
	logger         *slog.Logger
}

// CommissionServiceParams holds dependencies for CommissionService, injected by Fx.
type CommissionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CommissionRepo repository.CommissionRepository
	Activity       usecase.ActivityUsecase
	Logger         *slog.Logger
}

// NewCommissionService creates the commission admin service.
func NewCommissionService(params CommissionServiceParams) usecase.CommissionUsecase {
	return &commissionService{
		txManager:      params.TxManager,
		commissionRepo: params.CommissionRepo,
		activity:       params.Activity,
		logger:         params.Logger,
	}
}

func (srv *commissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCommission puts a merchant on commission billing.
// Merchants holding a subscription or an existing commission are rejected.
func (srv *commissionService) AddCommission(ctx context.Context, merchantID uuid.UUID, input *usecase.CommissionInput) (*entity.Commission, error) {
	if err := validateCommission(input); err != nil {
		return nil, err
	}

	owner := entity.MerchantRef(merchantID)
	now := nowFunc()
	commission := &entity.Commission{
		ID:              uuid.New(),
		MerchantID:      merchantID,
		CommissionType:  input.CommissionType,
		CommissionValue: input.CommissionValue,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accounts := repos.NewAccountRepository()
		account, err := accounts.FindAccount(ctx, owner)
		if err != nil {
			return accountError(owner, err)
		}

		pricing := repos.NewPricingRepository()
		refs, err := pricing.ListReferences(ctx, owner)
		if err != nil {
			return errors.Wrap(err, "failed to list pricing references")
		}
		if billing.HoldsSubscription(refs) {
			return errors.Wrap(domainerrors.ErrMerchantOnSubscription, merchantID.String())
		}
		if billing.HoldsCommission(refs) {
			return errors.Wrap(domainerrors.ErrCommissionExists, merchantID.String())
		}

		if err := repos.NewCommissionRepository().CreateCommission(ctx, commission); err != nil {
			if errors.Is(err, repository.ErrDuplicateCommission) {
				return errors.Wrap(domainerrors.ErrCommissionExists, merchantID.String())
			}

			return err
		}

		ref := &entity.PricingReference{
			ID:        uuid.New(),
			Owner:     owner,
			ModelType: entity.PricingModelCommission,
			ModelID:   commission.ID,
			CreatedAt: now,
		}
		if err := pricing.AddReference(ctx, ref); err != nil {
			return errors.Wrap(err, "failed to add commission reference")
		}

		err = accounts.BumpPricingVersion(ctx, owner, account.PricingVersion)
		if errors.Is(err, repository.ErrPricingVersionConflict) {
			return errors.Wrap(domainerrors.ErrPricingConflict, owner.String())
		}

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add commission", slog.Any("merchantID", merchantID), slog.Any("error", err))

		return nil, transactionError(err)
	}

	srv.activity.Record(ctx, owner, "Commission added", map[string]any{
		"commission_id": commission.ID.String(),
		"type":          string(commission.CommissionType),
		"value":         commission.CommissionValue.String(),
	})

	return commission, nil
}

// EditCommission changes the terms of a commission in place.
func (srv *commissionService) EditCommission(ctx context.Context, commissionID uuid.UUID, input *usecase.CommissionInput) (*entity.Commission, error) {
	if err := validateCommission(input); err != nil {
		return nil, err
	}

	commission, err := srv.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, commissionError(err, commissionID)
	}

	commission.CommissionType = input.CommissionType
	commission.CommissionValue = input.CommissionValue
	commission.UpdatedAt = nowFunc()

	if err := srv.commissionRepo.UpdateCommission(ctx, commission); err != nil {
		return nil, commissionError(err, commissionID)
	}

	srv.activity.Record(ctx, entity.MerchantRef(commission.MerchantID), "Commission updated", map[string]any{
		"commission_id": commission.ID.String(),
		"type":          string(commission.CommissionType),
		"value":         commission.CommissionValue.String(),
	})

	return commission, nil
}

// GetCommission returns the commission of a merchant.
func (srv *commissionService) GetCommission(ctx context.Context, merchantID uuid.UUID) (*entity.Commission, error) {
	commission, err := srv.commissionRepo.FindCommissionByMerchant(ctx, merchantID)
	if err != nil {
		return nil, commissionError(err, merchantID)
	}

	return commission, nil
}

func commissionError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrCommissionNotFound) {
		return errors.Wrap(domainerrors.ErrCommissionNotFound, id.String())
	}

	return errors.Wrap(err, "commission repository")
}

func validateCommission(input *usecase.CommissionInput) error {
	if input == nil || !input.CommissionType.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "commission type must be Fixed or Percentage")
	}
	if !input.CommissionValue.IsPositive() {
		return errors.Wrap(domainerrors.ErrInvalidCommissionValue, "commission value must be positive")
	}
	if input.CommissionType == entity.CommissionPercentage && input.CommissionValue.GreaterThan(maxPercentage) {
		return errors.Wrap(domainerrors.ErrInvalidCommissionValue, "percentage must not exceed 100")
	}

	return nil
}
