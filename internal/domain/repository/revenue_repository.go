package repository

import (
	"context"
	"time"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository exposes aggregates over the order read model.
// Cancelled orders never count.
type OrderRepository interface {
	// AggregateOrders totals revenue, order count and commission for orders created in [from, to).
	AggregateOrders(ctx context.Context, from, to time.Time) (*entity.RevenueFigures, error)

	// AggregateOrdersByMerchant does the same grouped per merchant.
	AggregateOrdersByMerchant(ctx context.Context, from, to time.Time) ([]*entity.MerchantRevenue, error)
}

// RevenueRepository stores daily revenue summaries.
type RevenueRepository interface {
	// UpsertSummary writes the platform summary for its date, replacing an earlier run.
	UpsertSummary(ctx context.Context, summary *entity.RevenueSummary) error

	// UpsertMerchantSummary writes a merchant summary for its (merchant, date).
	UpsertMerchantSummary(ctx context.Context, summary *entity.MerchantRevenueSummary) error

	// ListSummaries returns platform summaries with date in [from, to], oldest first.
	ListSummaries(ctx context.Context, from, to time.Time) ([]*entity.RevenueSummary, error)

	// ListMerchantSummaries returns one merchant's summaries with date in [from, to], oldest first.
	ListMerchantSummaries(ctx context.Context, merchantID uuid.UUID, from, to time.Time) ([]*entity.MerchantRevenueSummary, error)
}
