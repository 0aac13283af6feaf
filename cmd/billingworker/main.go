package main

import (
	"context"
	"log/slog"
	"os"

	"billing/config"
	"billing/internal/delivery"
	"billing/internal/delivery/worker"
	"billing/internal/delivery/worker/handler"
	"billing/internal/domain/constants"
	"billing/internal/domain/repository"
	logs "billing/internal/infra/log"
	"billing/internal/infra/metrics"
	"billing/internal/infra/notification"
	"billing/internal/infra/persistence/mongo"
	"billing/internal/infra/persistence/postgres"
	"billing/internal/infra/pubsub"
	"billing/internal/infra/report"
	"billing/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAccountRepository,
			postgres.NewSubscriptionLogRepository,
			postgres.NewDiscountRepository,
			postgres.NewPromoCodeRepository,
			postgres.NewOrderRepository,
			postgres.NewRevenueRepository,
			postgres.NewDeviceRepository,
			newActivityLogRepository,
		),
	)
}

// newActivityLogRepository picks the activity log backend from configuration
func newActivityLogRepository(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (repository.ActivityLogRepository, error) {
	if cfg.ActivityLog.Store != constants.ActivityStoreMongo {
		return postgres.NewActivityLogRepository(db), nil
	}

	mongoDB, err := mongo.Connect(lc, cfg, logger)
	if err != nil {
		return nil, err
	}

	return mongo.NewActivityLogRepository(mongoDB), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
			pubsub.NewEventPublisher,
			report.NewReportExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewActivityService,
			impl.NewNotificationService,
			impl.NewExpiryService,
			impl.NewRevenueService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewJobHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
