package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/billing"
	"billing/internal/domain/entity"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type revenueService struct {
	accountRepo   repository.AccountRepository
	orderRepo     repository.OrderRepository
	logRepo       repository.SubscriptionLogRepository
	revenueRepo   repository.RevenueRepository
	exporter      service.ReportExporter
	location      *time.Location
	exportEnabled bool
	logger        *slog.Logger
}

// RevenueServiceParams holds dependencies for RevenueService, injected by Fx.
type RevenueServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OrderRepo   repository.OrderRepository
	LogRepo     repository.SubscriptionLogRepository
	RevenueRepo repository.RevenueRepository
	Exporter    service.ReportExporter
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRevenueService creates the daily revenue aggregator.
func NewRevenueService(params RevenueServiceParams) usecase.RevenueUsecase {
	return &revenueService{
		accountRepo:   params.AccountRepo,
		orderRepo:     params.OrderRepo,
		logRepo:       params.LogRepo,
		revenueRepo:   params.RevenueRepo,
		exporter:      params.Exporter,
		location:      params.Config.Billing.Location(),
		exportEnabled: params.Config.Reports != nil && params.Config.Reports.BucketURL != "",
		logger:        params.Logger,
	}
}

func (srv *revenueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Rollup summarizes yesterday in the billing timezone. The steps are not
// transactional; summaries are upserted by date so a rerun overwrites them.
func (srv *revenueService) Rollup(ctx context.Context) (*usecase.RollupReport, error) {
	now := nowFunc()
	from, to := billing.DayWindow(now, srv.location, 1)
	logger := srv.log(ctx).With(slog.String("date", from.Format(time.DateOnly)))

	figures, err := srv.orderRepo.AggregateOrders(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}
	subscriptions, err := srv.logRepo.SumPaid(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum subscription revenue")
	}
	figures.SubscriptionRevenue = subscriptions

	summary := &entity.RevenueSummary{
		ID:             uuid.New(),
		Date:           from,
		RevenueFigures: *figures,
		CreatedAt:      now,
	}
	if err := srv.revenueRepo.UpsertSummary(ctx, summary); err != nil {
		return nil, errors.Wrap(err, "failed to upsert revenue summary")
	}

	report := &usecase.RollupReport{Summary: summary}
	var errs []error

	merchants, err := srv.merchantFigures(ctx, from, to)
	if err != nil {
		errs = append(errs, err)
	}
	for _, m := range merchants {
		merchantSummary := &entity.MerchantRevenueSummary{
			ID:             uuid.New(),
			MerchantID:     m.MerchantID,
			Date:           from,
			RevenueFigures: m.RevenueFigures,
			CreatedAt:      now,
		}
		if err := srv.revenueRepo.UpsertMerchantSummary(ctx, merchantSummary); err != nil {
			logger.Error("[Worker] Failed to upsert merchant revenue summary", slog.Any("merchantID", m.MerchantID), slog.Any("error", err))
			errs = append(errs, errors.Wrapf(err, "merchant %s", m.MerchantID))

			continue
		}
		report.MerchantSummaries++
	}

	reset, err := srv.accountRepo.ResetOpenedToday(ctx)
	if err != nil {
		errs = append(errs, errors.Wrap(err, "failed to reset opened-today flags"))
	}
	report.MerchantsReset = reset

	if srv.exportEnabled {
		if err := srv.exporter.ExportRevenueSummary(ctx, summary); err != nil {
			logger.Warn("[Worker] Failed to export revenue summary", slog.Any("error", err))
		} else {
			report.Exported = true
		}
	}

	logger.Info("[Worker] Revenue rollup finished",
		slog.String("totalRevenue", summary.TotalRevenue.String()),
		slog.Int64("orders", summary.OrderCount),
		slog.Int("merchantSummaries", report.MerchantSummaries),
		slog.Int64("merchantsReset", report.MerchantsReset))

	return report, errors.Join(errs...)
}

// merchantFigures merges per-merchant order figures with per-merchant subscription revenue.
// Merchants that only paid for a subscription still get a summary.
func (srv *revenueService) merchantFigures(ctx context.Context, from, to time.Time) ([]*entity.MerchantRevenue, error) {
	merchants, err := srv.orderRepo.AggregateOrdersByMerchant(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders by merchant")
	}
	paid, err := srv.logRepo.SumPaidByMerchant(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum subscription revenue by merchant")
	}

	seen := make(map[uuid.UUID]struct{}, len(merchants))
	for _, m := range merchants {
		seen[m.MerchantID] = struct{}{}
		m.SubscriptionRevenue = paid[m.MerchantID]
	}

	var subscriptionOnly []*entity.MerchantRevenue
	for merchantID, amount := range paid {
		if _, ok := seen[merchantID]; ok {
			continue
		}
		subscriptionOnly = append(subscriptionOnly, &entity.MerchantRevenue{
			MerchantID: merchantID,
			RevenueFigures: entity.RevenueFigures{
				TotalRevenue:        decimal.Zero,
				CommissionRevenue:   decimal.Zero,
				SubscriptionRevenue: amount,
			},
		})
	}
	slices.SortFunc(subscriptionOnly, func(a, b *entity.MerchantRevenue) int {
		return strings.Compare(a.MerchantID.String(), b.MerchantID.String())
	})

	return append(merchants, subscriptionOnly...), nil
}
