package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueFigures are the totals computed for one day.
type RevenueFigures struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	OrderCount          int64           `json:"order_count"`
	CommissionRevenue   decimal.Decimal `json:"commission_revenue"`
	SubscriptionRevenue decimal.Decimal `json:"subscription_revenue"`
}

// RevenueSummary is the platform-wide summary for one calendar day.
type RevenueSummary struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
	RevenueFigures
	CreatedAt time.Time `json:"created_at"`
}

// MerchantRevenueSummary is one merchant's summary for one calendar day.
type MerchantRevenueSummary struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id"`
	Date       time.Time `json:"date"`
	RevenueFigures
	CreatedAt time.Time `json:"created_at"`
}

// MerchantRevenue pairs a merchant with the figures aggregated for it.
type MerchantRevenue struct {
	MerchantID uuid.UUID
	RevenueFigures
}
