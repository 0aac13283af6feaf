package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type planService struct {
	planRepo repository.PlanRepository
	logRepo  repository.SubscriptionLogRepository
	logger   *slog.Logger
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	PlanRepo repository.PlanRepository
	LogRepo  repository.SubscriptionLogRepository
	Logger   *slog.Logger
}

// NewPlanService creates the plan catalog service.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		planRepo: params.PlanRepo,
		logRepo:  params.LogRepo,
		logger:   params.Logger,
	}
}

func (srv *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *planService) CreatePlan(ctx context.Context, input *usecase.PlanInput) (*entity.SubscriptionPlan, error) {
	if err := validatePlan(input); err != nil {
		return nil, err
	}

	now := nowFunc()
	plan := &entity.SubscriptionPlan{
		ID:        uuid.New(),
		CreatedAt: now,
	}
	applyPlanInput(plan, input)
	plan.UpdatedAt = now

	if err := srv.planRepo.CreatePlan(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription plan")
	}

	srv.log(ctx).Info("Subscription plan created", slog.Any("planID", plan.ID), slog.String("audience", string(plan.Audience)))

	return plan, nil
}

func (srv *planService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error) {
	plan, err := srv.planRepo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, planError(err, id)
	}

	return plan, nil
}

func (srv *planService) ListPlans(ctx context.Context, audience *entity.UserType) ([]*entity.SubscriptionPlan, error) {
	if audience != nil && !audience.CanOwnPricing() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "audience must be Merchant or Customer")
	}

	plans, err := srv.planRepo.ListPlans(ctx, audience)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription plans")
	}

	return plans, nil
}

// UpdatePlan overwrites the plan. Ledger entries keep the amount and period they were bought with.
func (srv *planService) UpdatePlan(ctx context.Context, id uuid.UUID, input *usecase.PlanInput) (*entity.SubscriptionPlan, error) {
	if err := validatePlan(input); err != nil {
		return nil, err
	}

	plan, err := srv.planRepo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, planError(err, id)
	}

	applyPlanInput(plan, input)
	plan.UpdatedAt = nowFunc()

	if err := srv.planRepo.UpdatePlan(ctx, plan); err != nil {
		return nil, planError(err, id)
	}

	return plan, nil
}

// DeletePlan removes a plan that no ledger entry was bought from.
func (srv *planService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.planRepo.FindPlanByID(ctx, id); err != nil {
		return planError(err, id)
	}

	used, err := srv.logRepo.CountLogsByPlan(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count subscription logs")
	}
	if used > 0 {
		return errors.Wrapf(domainerrors.ErrPlanInUse, "%d ledger entries reference plan %s", used, id)
	}

	if err := srv.planRepo.DeletePlan(ctx, id); err != nil {
		return planError(err, id)
	}

	srv.log(ctx).Info("Subscription plan deleted", slog.Any("planID", id))

	return nil
}

func applyPlanInput(plan *entity.SubscriptionPlan, input *usecase.PlanInput) {
	plan.Audience = input.Audience
	plan.Name = strings.TrimSpace(input.Name)
	plan.Amount = input.Amount
	plan.DurationDays = input.DurationDays
	plan.TaxID = input.TaxID
	plan.Description = input.Description
	plan.IsActive = input.IsActive
}

func validatePlan(input *usecase.PlanInput) error {
	switch {
	case input == nil:
		return errors.Wrap(domainerrors.ErrValidationFailed, "plan is required")
	case !input.Audience.CanOwnPricing():
		return errors.Wrap(domainerrors.ErrValidationFailed, "audience must be Merchant or Customer")
	case strings.TrimSpace(input.Name) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	case !input.Amount.IsPositive():
		return errors.Wrap(domainerrors.ErrValidationFailed, "amount must be positive")
	case input.DurationDays <= 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "duration must be at least one day")
	}

	return nil
}

func planError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrPlanNotFound) {
		return errors.Wrap(domainerrors.ErrPlanNotFound, id.String())
	}

	return errors.Wrap(err, "plan repository")
}
