package impl

import (
	"context"
	"log/slog"
	"time"

	"billing/config"
	"billing/internal/domain/billing"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type homeService struct {
	accountRepo repository.AccountRepository
	orderRepo   repository.OrderRepository
	logRepo     repository.SubscriptionLogRepository
	revenueRepo repository.RevenueRepository
	location    *time.Location
	logger      *slog.Logger
}

// HomeServiceParams holds dependencies for HomeService, injected by Fx.
type HomeServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OrderRepo   repository.OrderRepository
	LogRepo     repository.SubscriptionLogRepository
	RevenueRepo repository.RevenueRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewHomeService creates the home screen service.
func NewHomeService(params HomeServiceParams) usecase.HomeUsecase {
	return &homeService{
		accountRepo: params.AccountRepo,
		orderRepo:   params.OrderRepo,
		logRepo:     params.LogRepo,
		revenueRepo: params.RevenueRepo,
		location:    params.Config.Billing.Location(),
		logger:      params.Logger,
	}
}

// Realtime reports today's figures, with "today" taken in the billing timezone.
func (srv *homeService) Realtime(ctx context.Context) (*usecase.RealtimeStats, error) {
	now := nowFunc()
	from, to := billing.DayWindow(now, srv.location, 0)

	orders, err := srv.orderRepo.AggregateOrders(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	open, err := srv.accountRepo.CountMerchantsOpenedToday(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count open merchants")
	}

	active, err := srv.logRepo.CountActivePaid(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active subscriptions")
	}

	return &usecase.RealtimeStats{
		Date:                from,
		OrderCount:          orders.OrderCount,
		Revenue:             orders.TotalRevenue,
		MerchantsOpen:       open,
		ActiveSubscriptions: active,
	}, nil
}

func (srv *homeService) RevenueSummaries(ctx context.Context, from, to time.Time) ([]*entity.RevenueSummary, error) {
	if to.Before(from) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "from must not be after to")
	}

	summaries, err := srv.revenueRepo.ListSummaries(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list revenue summaries")
	}

	return summaries, nil
}

func (srv *homeService) MerchantRevenueSummaries(ctx context.Context, merchantID uuid.UUID, from, to time.Time) ([]*entity.MerchantRevenueSummary, error) {
	if to.Before(from) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "from must not be after to")
	}

	summaries, err := srv.revenueRepo.ListMerchantSummaries(ctx, merchantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant revenue summaries")
	}

	return summaries, nil
}
