package entity

import (
	"time"

	"github.com/google/uuid"
)

// PricingModelType is the billing model a pricing reference points at.
type PricingModelType string

const (
	// PricingModelCommission points at a Commission document.
	PricingModelCommission PricingModelType = "Commission"
	// PricingModelSubscription points at a SubscriptionLog.
	PricingModelSubscription PricingModelType = "Subscription"
)

// PricingReference is one entry of an owner's ordered pricing collection.
type PricingReference struct {
	ID        uuid.UUID        `json:"id"`
	Owner     UserRef          `json:"owner"`
	ModelType PricingModelType `json:"model_type"`
	ModelID   uuid.UUID        `json:"model_id"`
	CreatedAt time.Time        `json:"created_at"`
}

// PricingState is the billing mode currently in force for a user.
// Exactly one of Commission and Subscription is set.
type PricingState struct {
	User         UserRef          `json:"user"`
	Mode         PricingModelType `json:"mode"`
	Commission   *Commission      `json:"commission,omitempty"`
	Subscription *SubscriptionLog `json:"subscription,omitempty"`
}
