package postgres

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const revenueSelect = "COALESCE(SUM(grand_total), 0) AS total_revenue, " +
	"COUNT(*) AS order_count, " +
	"COALESCE(SUM(commission_amount), 0) AS commission_revenue"

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

type orderAggregateRow struct {
	MerchantID        uuid.UUID
	TotalRevenue      decimal.Decimal
	OrderCount        int64
	CommissionRevenue decimal.Decimal
}

func (repo *orderRepository) window(ctx context.Context, from, to time.Time) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status <> ? AND created_at >= ? AND created_at < ?", string(entity.OrderStatusCancelled), from, to)
}

// AggregateOrders totals non-cancelled orders created in [from, to).
func (repo *orderRepository) AggregateOrders(ctx context.Context, from, to time.Time) (*entity.RevenueFigures, error) {
	var row orderAggregateRow

	if err := repo.window(ctx, from, to).
		Select(revenueSelect).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	return &entity.RevenueFigures{
		TotalRevenue:        row.TotalRevenue,
		OrderCount:          row.OrderCount,
		CommissionRevenue:   row.CommissionRevenue,
		SubscriptionRevenue: decimal.Zero,
	}, nil
}

// AggregateOrdersByMerchant totals non-cancelled orders created in [from, to) per merchant.
func (repo *orderRepository) AggregateOrdersByMerchant(ctx context.Context, from, to time.Time) ([]*entity.MerchantRevenue, error) {
	var rows []orderAggregateRow

	if err := repo.window(ctx, from, to).
		Select("merchant_id, " + revenueSelect).
		Group("merchant_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders by merchant")
	}

	result := make([]*entity.MerchantRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.MerchantRevenue{
			MerchantID: row.MerchantID,
			RevenueFigures: entity.RevenueFigures{
				TotalRevenue:        row.TotalRevenue,
				OrderCount:          row.OrderCount,
				CommissionRevenue:   row.CommissionRevenue,
				SubscriptionRevenue: decimal.Zero,
			},
		})
	}

	return result, nil
}

// revenueRepository implements the repository.RevenueRepository interface.
type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository is the constructor for revenueRepository.
func NewRevenueRepository(db *gorm.DB) repository.RevenueRepository {
	return &revenueRepository{
		db: db,
	}
}

var summaryUpdateColumns = []string{"total_revenue", "order_count", "commission_revenue", "subscription_revenue"}

// UpsertSummary writes the platform summary for its date, replacing an earlier run.
func (repo *revenueRepository) UpsertSummary(ctx context.Context, summary *entity.RevenueSummary) error {
	summaryM := &model.RevenueSummaryModel{
		ID:                  summary.ID,
		Date:                summary.Date,
		TotalRevenue:        summary.TotalRevenue,
		OrderCount:          summary.OrderCount,
		CommissionRevenue:   summary.CommissionRevenue,
		SubscriptionRevenue: summary.SubscriptionRevenue,
		CreatedAt:           summary.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns(summaryUpdateColumns),
		}).
		Create(summaryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert revenue summary")
	}

	return nil
}

// UpsertMerchantSummary writes a merchant summary for its (merchant, date).
func (repo *revenueRepository) UpsertMerchantSummary(ctx context.Context, summary *entity.MerchantRevenueSummary) error {
	summaryM := &model.MerchantRevenueSummaryModel{
		ID:                  summary.ID,
		MerchantID:          summary.MerchantID,
		Date:                summary.Date,
		TotalRevenue:        summary.TotalRevenue,
		OrderCount:          summary.OrderCount,
		CommissionRevenue:   summary.CommissionRevenue,
		SubscriptionRevenue: summary.SubscriptionRevenue,
		CreatedAt:           summary.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "merchant_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(summaryUpdateColumns),
		}).
		Create(summaryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert merchant revenue summary")
	}

	return nil
}

// ListSummaries returns platform summaries with date in [from, to], oldest first.
func (repo *revenueRepository) ListSummaries(ctx context.Context, from, to time.Time) ([]*entity.RevenueSummary, error) {
	var summaryModels []*model.RevenueSummaryModel

	if err := repo.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&summaryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list revenue summaries")
	}

	summaries := make([]*entity.RevenueSummary, 0, len(summaryModels))
	for _, s := range summaryModels {
		summaries = append(summaries, &entity.RevenueSummary{
			ID:   s.ID,
			Date: s.Date,
			RevenueFigures: entity.RevenueFigures{
				TotalRevenue:        s.TotalRevenue,
				OrderCount:          s.OrderCount,
				CommissionRevenue:   s.CommissionRevenue,
				SubscriptionRevenue: s.SubscriptionRevenue,
			},
			CreatedAt: s.CreatedAt,
		})
	}

	return summaries, nil
}

// ListMerchantSummaries returns one merchant's summaries with date in [from, to], oldest first.
func (repo *revenueRepository) ListMerchantSummaries(ctx context.Context, merchantID uuid.UUID, from, to time.Time) ([]*entity.MerchantRevenueSummary, error) {
	var summaryModels []*model.MerchantRevenueSummaryModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ? AND date >= ? AND date <= ?", merchantID, from, to).
		Order("date ASC").
		Find(&summaryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merchant revenue summaries")
	}

	summaries := make([]*entity.MerchantRevenueSummary, 0, len(summaryModels))
	for _, s := range summaryModels {
		summaries = append(summaries, &entity.MerchantRevenueSummary{
			ID:         s.ID,
			MerchantID: s.MerchantID,
			Date:       s.Date,
			RevenueFigures: entity.RevenueFigures{
				TotalRevenue:        s.TotalRevenue,
				OrderCount:          s.OrderCount,
				CommissionRevenue:   s.CommissionRevenue,
				SubscriptionRevenue: s.SubscriptionRevenue,
			},
			CreatedAt: s.CreatedAt,
		})
	}

	return summaries, nil
}
