// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

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

// nowFunc is the clock used by every service in this package. Tests replace it.
var nowFunc = time.Now

type pricingService struct {
	accountRepo    repository.AccountRepository
	pricingRepo    repository.PricingRepository
	commissionRepo repository.CommissionRepository
	logRepo        repository.SubscriptionLogRepository
	logger         *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	AccountRepo    repository.AccountRepository
	PricingRepo    repository.PricingRepository
	CommissionRepo repository.CommissionRepository
	LogRepo        repository.SubscriptionLogRepository
	Logger         *slog.Logger
}

// NewPricingService creates the pricing selector.
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		accountRepo:    params.AccountRepo,
		pricingRepo:    params.PricingRepo,
		commissionRepo: params.CommissionRepo,
		logRepo:        params.LogRepo,
		logger:         params.Logger,
	}
}

func (srv *pricingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentPricing resolves the commission or the active subscription of a user. Read only.
func (srv *pricingService) CurrentPricing(ctx context.Context, user entity.UserRef) (*entity.PricingState, error) {
	if _, err := srv.accountRepo.FindAccount(ctx, user); err != nil {
		return nil, accountError(user, err)
	}

	refs, err := srv.pricingRepo.ListReferences(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing references")
	}

	// A commission reference wins: attaching a subscription always removes it first.
	for _, ref := range refs {
		if ref.ModelType != entity.PricingModelCommission {
			continue
		}
		commission, err := srv.commissionRepo.FindCommissionByID(ctx, ref.ModelID)
		if errors.Is(err, repository.ErrCommissionNotFound) {
			srv.log(ctx).Warn("Pricing reference points at a missing commission",
				slog.String("user", user.String()), slog.Any("commissionID", ref.ModelID))

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find commission")
		}

		return &entity.PricingState{User: user, Mode: entity.PricingModelCommission, Commission: commission}, nil
	}

	logs, err := srv.logRepo.ListLogs(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription logs")
	}

	if active := billing.ActiveSubscription(logs, nowFunc()); active != nil {
		return &entity.PricingState{User: user, Mode: entity.PricingModelSubscription, Subscription: active}, nil
	}

	return nil, errors.Wrap(domainerrors.ErrNoPricingConfigured, user.String())
}

// QuoteOrderCharge returns the commission due on an order. Merchants on a
// subscription, or without any pricing, pay nothing per order.
func (srv *pricingService) QuoteOrderCharge(ctx context.Context, merchantID uuid.UUID, subtotal decimal.Decimal) (*usecase.ChargeQuote, error) {
	if subtotal.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "subtotal must not be negative")
	}

	quote := &usecase.ChargeQuote{MerchantID: merchantID, Subtotal: subtotal, Commission: decimal.Zero}

	state, err := srv.CurrentPricing(ctx, entity.MerchantRef(merchantID))
	if errors.Is(err, domainerrors.ErrNoPricingConfigured) {
		return quote, nil
	}
	if err != nil {
		return nil, err
	}

	quote.Mode = state.Mode
	if state.Commission != nil {
		quote.Commission = state.Commission.Charge(subtotal)
	}

	return quote, nil
}

// accountError maps a repository failure on an account lookup to its AppError.
func accountError(user entity.UserRef, err error) error {
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to find account")
	}
	if user.Type == entity.UserTypeCustomer {
		return errors.Wrap(domainerrors.ErrCustomerNotFound, user.ID.String())
	}

	return errors.Wrap(domainerrors.ErrMerchantNotFound, user.ID.String())
}
