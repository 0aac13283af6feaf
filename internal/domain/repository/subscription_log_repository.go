package repository

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for ledger persistence.
var (
	// ErrSubscriptionLogNotFound is returned when a ledger entry is not found.
	ErrSubscriptionLogNotFound = errors.New("subscription log not found")
	// ErrDuplicateGatewayOrder is returned when a gateway order id is already recorded.
	ErrDuplicateGatewayOrder = errors.New("gateway order already recorded")
)

// SubscriptionLogRepository defines the interface for the subscription ledger.
type SubscriptionLogRepository interface {
	// CreateLog persists a new ledger entry.
	CreateLog(ctx context.Context, log *entity.SubscriptionLog) error

	// FindLogByID retrieves a ledger entry by its unique ID.
	FindLogByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionLog, error)

	// FindLogByGatewayOrder retrieves the entry recorded for a gateway order id.
	FindLogByGatewayOrder(ctx context.Context, orderID string) (*entity.SubscriptionLog, error)

	// FindLatestLog returns the owner's most recently created entry, whatever its status.
	FindLatestLog(ctx context.Context, owner entity.UserRef) (*entity.SubscriptionLog, error)

	// ListLogs returns the owner's entries, newest first.
	ListLogs(ctx context.Context, owner entity.UserRef) ([]*entity.SubscriptionLog, error)

	// MarkPaid settles an entry.
	MarkPaid(ctx context.Context, id uuid.UUID, paymentID *string) error

	// FindEndedLogs returns up to limit entries whose end date is at or before now,
	// leaving out the ids in exclude.
	FindEndedLogs(ctx context.Context, now time.Time, exclude []uuid.UUID, limit int) ([]*entity.SubscriptionLog, error)

	// DeleteLog removes an entry.
	DeleteLog(ctx context.Context, id uuid.UUID) error

	// CountLogsByPlan counts entries purchased from a plan.
	CountLogsByPlan(ctx context.Context, planID uuid.UUID) (int64, error)

	// CountActivePaid counts paid entries still running at now.
	CountActivePaid(ctx context.Context, now time.Time) (int64, error)

	// SumPaid sums paid amounts of entries created in [from, to).
	SumPaid(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumPaidByMerchant sums paid merchant amounts created in [from, to) per merchant.
	SumPaidByMerchant(ctx context.Context, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error)
}
