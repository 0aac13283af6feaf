package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingEventType names a billing lifecycle event.
type BillingEventType string

const (
	// EventSubscriptionActivated is emitted after a paid period is attached to its owner.
	EventSubscriptionActivated BillingEventType = "subscription.activated"
	// EventSubscriptionExpired is emitted after the sweeper removes an ended period.
	EventSubscriptionExpired BillingEventType = "subscription.expired"
)

// BillingEvent is the payload published to the billing topic.
type BillingEvent struct {
	Type       BillingEventType `json:"type"`
	Owner      UserRef          `json:"owner"`
	LogID      uuid.UUID        `json:"log_id"`
	PlanID     uuid.UUID        `json:"plan_id"`
	EndDate    time.Time        `json:"end_date"`
	OccurredAt time.Time        `json:"occurred_at"`
}
