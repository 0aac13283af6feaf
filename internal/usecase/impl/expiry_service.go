package impl

import (
	"context"
	"log/slog"
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
	"go.uber.org/fx"
)

type expiryService struct {
	txManager     repository.TransactionManager
	discountRepo  repository.DiscountRepository
	promoRepo     repository.PromoCodeRepository
	logRepo       repository.SubscriptionLogRepository
	activityRepo  repository.ActivityLogRepository
	publisher     service.EventPublisher
	batchSize     int
	retentionDays int
	logger        *slog.Logger
}

// ExpiryServiceParams holds dependencies for ExpiryService, injected by Fx.
type ExpiryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DiscountRepo repository.DiscountRepository
	PromoRepo    repository.PromoCodeRepository
	LogRepo      repository.SubscriptionLogRepository
	ActivityRepo repository.ActivityLogRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewExpiryService creates the expiry sweeper.
func NewExpiryService(params ExpiryServiceParams) usecase.ExpiryUsecase {
	return &expiryService{
		txManager:     params.TxManager,
		discountRepo:  params.DiscountRepo,
		promoRepo:     params.PromoRepo,
		logRepo:       params.LogRepo,
		activityRepo:  params.ActivityRepo,
		publisher:     params.Publisher,
		batchSize:     params.Config.Billing.SweepBatchSize,
		retentionDays: params.Config.Billing.ActivityRetentionDays,
		logger:        params.Logger,
	}
}

func (srv *expiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sweep removes everything that expired before now. Each step runs even when
// an earlier one failed; the failures are returned together with the report.
func (srv *expiryService) Sweep(ctx context.Context) (*usecase.SweepReport, error) {
	now := nowFunc()
	report := &usecase.SweepReport{}
	var errs []error

	deleted, err := srv.discountRepo.DeleteExpiredMerchantDiscounts(ctx, now)
	if err != nil {
		errs = append(errs, errors.Wrap(err, "merchant discounts"))
	}
	report.MerchantDiscounts = deleted

	if err := srv.sweepProductDiscounts(ctx, now, report); err != nil {
		errs = append(errs, errors.Wrap(err, "product discounts"))
	}

	deleted, err = srv.promoRepo.DeleteExpiredPromoCodes(ctx, now)
	if err != nil {
		errs = append(errs, errors.Wrap(err, "promo codes"))
	}
	report.PromoCodes = deleted

	if err := srv.sweepSubscriptions(ctx, now, report); err != nil {
		errs = append(errs, errors.Wrap(err, "subscription logs"))
	}

	srv.log(ctx).Info("[Worker] Expiry sweep finished",
		slog.Int64("merchantDiscounts", report.MerchantDiscounts),
		slog.Int64("productDiscounts", report.ProductDiscounts),
		slog.Int64("detachedProducts", report.DetachedProducts),
		slog.Int64("promoCodes", report.PromoCodes),
		slog.Int64("subscriptions", report.Subscriptions),
		slog.Int64("failed", report.Failed))

	return report, errors.Join(errs...)
}

// sweepProductDiscounts detaches expired product discounts from their products, then deletes them.
func (srv *expiryService) sweepProductDiscounts(ctx context.Context, now time.Time, report *usecase.SweepReport) error {
	ids, err := srv.discountRepo.FindExpiredProductDiscountIDs(ctx, now)
	if err != nil || len(ids) == 0 {
		return err
	}

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		detached, err := repos.NewProductRepository().DetachDiscounts(ctx, ids)
		if err != nil {
			return err
		}
		deleted, err := repos.NewDiscountRepository().DeleteProductDiscounts(ctx, ids)
		if err != nil {
			return err
		}

		report.DetachedProducts, report.ProductDiscounts = detached, deleted

		return nil
	})
}

// sweepSubscriptions expires ended ledger entries one at a time. A failing entry
// is logged, counted and left out of later pages, so every batch is new work.
func (srv *expiryService) sweepSubscriptions(ctx context.Context, now time.Time, report *usecase.SweepReport) error {
	var failed []uuid.UUID

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		logs, err := srv.logRepo.FindEndedLogs(ctx, now, failed, srv.batchSize)
		if err != nil {
			return err
		}

		for _, entry := range logs {
			if err := srv.expire(ctx, entry); err != nil {
				srv.log(ctx).Error("[Worker] Failed to expire subscription log",
					slog.Any("logID", entry.ID), slog.String("owner", entry.Owner().String()), slog.Any("error", err))
				failed = append(failed, entry.ID)
				report.Failed++

				continue
			}
			report.Subscriptions++
		}

		if len(logs) < srv.batchSize {
			return nil
		}
	}
}

// expire pulls the subscription reference and deletes the entry in one transaction.
func (srv *expiryService) expire(ctx context.Context, entry *entity.SubscriptionLog) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.NewPricingRepository().RemoveReference(ctx, entry.Owner(), entity.PricingModelSubscription, entry.ID); err != nil {
			return errors.Wrap(err, "failed to remove subscription reference")
		}

		return repos.NewSubscriptionLogRepository().DeleteLog(ctx, entry.ID)
	})
	if err != nil {
		return err
	}

	event := &entity.BillingEvent{
		Type:       entity.EventSubscriptionExpired,
		Owner:      entry.Owner(),
		LogID:      entry.ID,
		PlanID:     entry.PlanID,
		EndDate:    entry.EndDate,
		OccurredAt: nowFunc(),
	}
	if err := srv.publisher.PublishBillingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("[Worker] Failed to publish expiry event", slog.Any("logID", entry.ID), slog.Any("error", err))
	}

	return nil
}

// PurgeActivityLogs removes audit entries older than the retention window.
func (srv *expiryService) PurgeActivityLogs(ctx context.Context) (int64, error) {
	cutoff := nowFunc().Add(-time.Duration(srv.retentionDays) * billing.Day)

	deleted, err := srv.activityRepo.DeleteActivityLogsBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge activity logs")
	}

	srv.log(ctx).Info("[Worker] Activity logs purged", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))

	return deleted, nil
}
