package usecase

import (
	"context"
	"time"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RealtimeStats are today's live figures for the admin home screen.
type RealtimeStats struct {
	Date                time.Time       `json:"date"`
	OrderCount          int64           `json:"order_count"`
	Revenue             decimal.Decimal `json:"revenue"`
	MerchantsOpen       int64           `json:"merchants_open"`
	ActiveSubscriptions int64           `json:"active_subscriptions"`
}

// HomeUsecase feeds the admin and merchant home screens.
type HomeUsecase interface {
	Realtime(ctx context.Context) (*RealtimeStats, error)
	// RevenueSummaries lists platform summaries for days in [from, to].
	RevenueSummaries(ctx context.Context, from, to time.Time) ([]*entity.RevenueSummary, error)
	// MerchantRevenueSummaries lists one merchant's summaries for days in [from, to].
	MerchantRevenueSummaries(ctx context.Context, merchantID uuid.UUID, from, to time.Time) ([]*entity.MerchantRevenueSummary, error)
}
