package main

import (
	"context"
	"log/slog"
	"os"

	"billing/config"
	"billing/internal/delivery"
	"billing/internal/delivery/api"
	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/router/handler"
	"billing/internal/domain/constants"
	"billing/internal/domain/repository"
	"billing/internal/infra/auth"
	logs "billing/internal/infra/log"
	"billing/internal/infra/messaging"
	"billing/internal/infra/metrics"
	"billing/internal/infra/payment"
	"billing/internal/infra/persistence/mongo"
	"billing/internal/infra/persistence/postgres"
	"billing/internal/infra/pubsub"
	"billing/internal/infra/qrcode"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewPricingRepository,
			postgres.NewCommissionRepository,
			postgres.NewPlanRepository,
			postgres.NewSubscriptionLogRepository,
			postgres.NewDiscountRepository,
			postgres.NewProductRepository,
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
			auth.NewJWTService,
			payment.NewRazorpayGateway,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			messaging.NewGraphClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewActivityService,
			impl.NewPricingService,
			impl.NewCommissionService,
			impl.NewPlanService,
			impl.NewSubscriptionService,
			impl.NewDiscountService,
			impl.NewHomeService,
			impl.NewDeviceService,
			impl.NewWebhookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCommissionHandler,
			handler.NewPlanHandler,
			handler.NewSubscriptionHandler,
			handler.NewDiscountHandler,
			handler.NewActivityHandler,
			handler.NewHomeHandler,
			handler.NewDeviceHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
