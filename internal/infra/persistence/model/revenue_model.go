package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueSummaryModel is the GORM-specific struct for the 'revenue_summaries' table.
type RevenueSummaryModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Date                time.Time       `gorm:"type:date;not null;uniqueIndex"`
	TotalRevenue        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OrderCount          int64           `gorm:"not null"`
	CommissionRevenue   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SubscriptionRevenue decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RevenueSummaryModel) TableName() string {
	return "revenue_summaries"
}

// MerchantRevenueSummaryModel is the GORM-specific struct for the 'merchant_revenue_summaries' table.
type MerchantRevenueSummaryModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_merchant_revenue_day,priority:1"`
	Date                time.Time       `gorm:"type:date;not null;uniqueIndex:idx_merchant_revenue_day,priority:2"`
	TotalRevenue        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OrderCount          int64           `gorm:"not null"`
	CommissionRevenue   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SubscriptionRevenue decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantRevenueSummaryModel) TableName() string {
	return "merchant_revenue_summaries"
}
