package repository

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a subscription plan is not found.
var ErrPlanNotFound = errors.New("subscription plan not found")

// PlanRepository defines the interface for the subscription plan catalog.
type PlanRepository interface {
	// CreatePlan persists a new plan.
	CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error

	// FindPlanByID retrieves a plan by its unique ID.
	FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error)

	// ListPlans lists plans, optionally only those offered to one audience.
	ListPlans(ctx context.Context, audience *entity.UserType) ([]*entity.SubscriptionPlan, error)

	// UpdatePlan overwrites a plan's editable fields.
	UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error

	// DeletePlan removes a plan.
	DeletePlan(ctx context.Context, id uuid.UUID) error
}
