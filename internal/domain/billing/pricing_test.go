package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing/internal/domain/entity"
)

func TestActiveSubscription(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	paidLong := &entity.SubscriptionLog{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPaid, EndDate: now.Add(40 * Day)}
	paidShort := &entity.SubscriptionLog{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPaid, EndDate: now.Add(5 * Day)}
	unpaid := &entity.SubscriptionLog{ID: uuid.New(), PaymentStatus: entity.PaymentStatusUnpaid, EndDate: now.Add(90 * Day)}
	ended := &entity.SubscriptionLog{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPaid, EndDate: now}

	t.Run("picks latest paid end", func(t *testing.T) {
		got := ActiveSubscription([]*entity.SubscriptionLog{paidShort, unpaid, paidLong, ended}, now)
		require.NotNil(t, got)
		assert.Equal(t, paidLong.ID, got.ID)
	})

	t.Run("period ending exactly now is not active", func(t *testing.T) {
		assert.Nil(t, ActiveSubscription([]*entity.SubscriptionLog{ended}, now))
	})

	t.Run("unpaid entries never count", func(t *testing.T) {
		assert.Nil(t, ActiveSubscription([]*entity.SubscriptionLog{unpaid}, now))
	})
}

func TestHoldsPricing(t *testing.T) {
	comm := []*entity.PricingReference{{ModelType: entity.PricingModelCommission}}
	subs := []*entity.PricingReference{{ModelType: entity.PricingModelSubscription}, {ModelType: entity.PricingModelSubscription}}

	assert.True(t, HoldsCommission(comm))
	assert.False(t, HoldsSubscription(comm))
	assert.True(t, HoldsSubscription(subs))
	assert.False(t, HoldsCommission(subs))
	assert.False(t, HoldsCommission(nil))
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2026-03-10 20:00 UTC is 2026-03-11 01:30 in Kolkata.
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	from, to := DayWindow(now, loc, 1)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), to)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestCommissionCharge(t *testing.T) {
	tests := []struct {
		name     string
		typ      entity.CommissionType
		value    string
		subtotal string
		want     string
	}{
		{"fixed", entity.CommissionFixed, "25", "400", "25"},
		{"fixed capped at subtotal", entity.CommissionFixed, "50", "30", "30"},
		{"percentage", entity.CommissionPercentage, "12.5", "399.99", "50"},
		{"percentage of zero", entity.CommissionPercentage, "10", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &entity.Commission{CommissionType: tt.typ, CommissionValue: decimal.RequireFromString(tt.value)}
			got := c.Charge(decimal.RequireFromString(tt.subtotal))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
