package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanInput is the editable part of a subscription plan.
type PlanInput struct {
	Audience     entity.UserType
	Name         string
	Amount       decimal.Decimal
	DurationDays int
	TaxID        *uuid.UUID
	Description  string
	IsActive     bool
}

// PlanUsecase manages the subscription plan catalog.
type PlanUsecase interface {
	CreatePlan(ctx context.Context, input *PlanInput) (*entity.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error)
	// ListPlans lists all plans, or only those of one audience.
	ListPlans(ctx context.Context, audience *entity.UserType) ([]*entity.SubscriptionPlan, error)
	// UpdatePlan edits a plan. Entries already purchased keep their amount and period.
	UpdatePlan(ctx context.Context, id uuid.UUID, input *PlanInput) (*entity.SubscriptionPlan, error)
	// DeletePlan removes a plan no ledger entry references.
	DeletePlan(ctx context.Context, id uuid.UUID) error
}
