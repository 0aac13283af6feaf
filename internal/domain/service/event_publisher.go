// Package service declares the outbound ports the use cases depend on.
package service

import (
	"context"

	"billing/internal/domain/entity"
)

// EventPublisher defines the interface for publishing billing events to a message queue
type EventPublisher interface {
	// PublishBillingEvent publishes a billing lifecycle event for async processing
	PublishBillingEvent(ctx context.Context, event *entity.BillingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
