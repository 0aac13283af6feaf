package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"billing/config"
	mockRepo "billing/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Billing: &config.BillingConfig{
			Timezone:              "Asia/Kolkata",
			ActivityRetentionDays: 10,
			SweepBatchSize:        100,
		},
	}
}

// freezeClock pins nowFunc to now for the duration of the test.
func freezeClock(t *testing.T, now time.Time) {
	t.Helper()

	previous := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = previous })
}

// newTxManager returns a transaction manager whose callbacks see a fresh set of repository mocks.
func newTxManager(t *testing.T) *mockRepo.MockTransactionManager {
	return &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{
			Account:         mockRepo.NewMockAccountRepository(t),
			Pricing:         mockRepo.NewMockPricingRepository(t),
			Commission:      mockRepo.NewMockCommissionRepository(t),
			SubscriptionLog: mockRepo.NewMockSubscriptionLogRepository(t),
			Discount:        mockRepo.NewMockDiscountRepository(t),
			Product:         mockRepo.NewMockProductRepository(t),
		},
	}
}
