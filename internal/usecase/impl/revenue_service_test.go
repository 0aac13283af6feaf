package impl

import (
	"context"
	"testing"
	"time"

	"billing/config"
	"billing/internal/domain/entity"
	mockRepo "billing/internal/mocks/repository"
	mockSvc "billing/internal/mocks/service"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type revenueServiceFixtures struct {
	service     usecase.RevenueUsecase
	accountRepo *mockRepo.MockAccountRepository
	orderRepo   *mockRepo.MockOrderRepository
	logRepo     *mockRepo.MockSubscriptionLogRepository
	revenueRepo *mockRepo.MockRevenueRepository
	exporter    *mockSvc.MockReportExporter
}

func createTestRevenueService(t *testing.T, cfg *config.Config) revenueServiceFixtures {
	fx := revenueServiceFixtures{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		logRepo:     mockRepo.NewMockSubscriptionLogRepository(t),
		revenueRepo: mockRepo.NewMockRevenueRepository(t),
		exporter:    mockSvc.NewMockReportExporter(t),
	}
	fx.service = NewRevenueService(RevenueServiceParams{
		AccountRepo: fx.accountRepo,
		OrderRepo:   fx.orderRepo,
		LogRepo:     fx.logRepo,
		RevenueRepo: fx.revenueRepo,
		Exporter:    fx.exporter,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestRevenueService_Rollup(t *testing.T) {
	cfg := newTestConfig()
	cfg.Reports = &config.ReportsConfig{BucketURL: "mem://"}
	fx := createTestRevenueService(t, cfg)

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	// 01:00 in India on Aug 2 is still Aug 1 in UTC; the rollup targets Aug 1 IST.
	now := time.Date(2026, 8, 2, 1, 0, 0, 0, ist)
	freezeClock(t, now)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, ist)
	to := from.AddDate(0, 0, 1)

	ctx := context.Background()
	withOrders, subscriptionOnly := uuid.New(), uuid.New()

	fx.orderRepo.On("AggregateOrders", ctx, sameInstant(from), sameInstant(to)).Return(&entity.RevenueFigures{
		TotalRevenue:      decimal.NewFromInt(12000),
		OrderCount:        40,
		CommissionRevenue: decimal.NewFromInt(960),
	}, nil)
	fx.logRepo.On("SumPaid", ctx, sameInstant(from), sameInstant(to)).Return(decimal.NewFromInt(1500), nil)
	fx.revenueRepo.On("UpsertSummary", ctx, mock.MatchedBy(func(s *entity.RevenueSummary) bool {
		return s.Date.Equal(from) && s.OrderCount == 40 && s.SubscriptionRevenue.Equal(decimal.NewFromInt(1500))
	})).Return(nil)
	fx.orderRepo.On("AggregateOrdersByMerchant", ctx, sameInstant(from), sameInstant(to)).Return([]*entity.MerchantRevenue{
		{MerchantID: withOrders, RevenueFigures: entity.RevenueFigures{TotalRevenue: decimal.NewFromInt(12000), OrderCount: 40}},
	}, nil)
	fx.logRepo.On("SumPaidByMerchant", ctx, sameInstant(from), sameInstant(to)).Return(map[uuid.UUID]decimal.Decimal{
		withOrders:       decimal.NewFromInt(500),
		subscriptionOnly: decimal.NewFromInt(1000),
	}, nil)
	fx.revenueRepo.On("UpsertMerchantSummary", ctx, mock.MatchedBy(func(s *entity.MerchantRevenueSummary) bool {
		return s.MerchantID == withOrders && s.SubscriptionRevenue.Equal(decimal.NewFromInt(500)) && s.OrderCount == 40
	})).Return(nil).Once()
	fx.revenueRepo.On("UpsertMerchantSummary", ctx, mock.MatchedBy(func(s *entity.MerchantRevenueSummary) bool {
		return s.MerchantID == subscriptionOnly && s.SubscriptionRevenue.Equal(decimal.NewFromInt(1000)) && s.OrderCount == 0
	})).Return(nil).Once()
	fx.accountRepo.On("ResetOpenedToday", ctx).Return(int64(17), nil)
	fx.exporter.On("ExportRevenueSummary", ctx, mock.AnythingOfType("*entity.RevenueSummary")).Return(nil)

	report, err := fx.service.Rollup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.MerchantSummaries)
	assert.Equal(t, int64(17), report.MerchantsReset)
	assert.True(t, report.Exported)
	assert.True(t, decimal.NewFromInt(960).Equal(report.Summary.CommissionRevenue))
}

func TestRevenueService_Rollup_SkipsExportWithoutBucket(t *testing.T) {
	fx := createTestRevenueService(t, newTestConfig())

	now := time.Date(2026, 8, 2, 6, 0, 0, 0, time.UTC)
	freezeClock(t, now)

	ctx := context.Background()
	fx.orderRepo.On("AggregateOrders", ctx, mock.Anything, mock.Anything).Return(&entity.RevenueFigures{}, nil)
	fx.logRepo.On("SumPaid", ctx, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	fx.revenueRepo.On("UpsertSummary", ctx, mock.Anything).Return(nil)
	fx.orderRepo.On("AggregateOrdersByMerchant", ctx, mock.Anything, mock.Anything).Return([]*entity.MerchantRevenue{}, nil)
	fx.logRepo.On("SumPaidByMerchant", ctx, mock.Anything, mock.Anything).Return(map[uuid.UUID]decimal.Decimal{}, nil)
	fx.accountRepo.On("ResetOpenedToday", ctx).Return(int64(0), errors.New("deadlock detected"))

	report, err := fx.service.Rollup(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opened-today")
	assert.False(t, report.Exported)
	fx.exporter.AssertNotCalled(t, "ExportRevenueSummary", mock.Anything, mock.Anything)
}
