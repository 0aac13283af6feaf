package usecase

import (
	"context"

	"billing/internal/domain/entity"
)

// RollupReport describes one daily rollup.
type RollupReport struct {
	Summary           *entity.RevenueSummary `json:"summary"`
	MerchantSummaries int                    `json:"merchant_summaries"`
	MerchantsReset    int64                  `json:"merchants_reset"`
	Exported          bool                   `json:"exported"`
}

// RevenueUsecase aggregates the previous day's revenue.
type RevenueUsecase interface {
	// Rollup writes the platform and per-merchant summaries for yesterday.
	Rollup(ctx context.Context) (*RollupReport, error)
}
