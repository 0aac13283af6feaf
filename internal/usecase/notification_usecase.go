package usecase

import (
	"context"

	"billing/internal/domain/entity"
)

// DispatchResult counts the pushes sent for one event.
type DispatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotificationUsecase turns billing events into push notifications.
type NotificationUsecase interface {
	// DispatchBillingEvent notifies the event owner's active devices and records the event.
	DispatchBillingEvent(ctx context.Context, event *entity.BillingEvent) (*DispatchResult, error)
}
