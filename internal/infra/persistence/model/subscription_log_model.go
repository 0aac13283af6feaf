package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionLogModel is the GORM-specific struct for the 'subscription_logs' table.
// Each row is one purchased subscription period.
type SubscriptionLogModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlanID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_subscription_logs_owner,priority:2"`
	TypeOfUser        string          `gorm:"type:varchar(16);not null;index:idx_subscription_logs_owner,priority:1"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMode       string          `gorm:"type:varchar(16);not null"`
	StartDate         time.Time       `gorm:"not null"`
	EndDate           time.Time       `gorm:"not null;index"`
	PaymentStatus     string          `gorm:"type:varchar(16);not null"`
	RazorpayOrderID   *string         `gorm:"type:varchar(64);uniqueIndex"`
	RazorpayPaymentID *string         `gorm:"type:varchar(64)"`
	CreatedAt         time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionLogModel) TableName() string {
	return "subscription_logs"
}
