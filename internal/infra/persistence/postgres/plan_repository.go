package postgres

import (
	"context"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// CreatePlan persists a new plan.
func (repo *planRepository) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	planM := fromPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid plan definition")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// FindPlanByID retrieves a plan by its unique ID.
func (repo *planRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error) {
	var planM model.SubscriptionPlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by ID")
	}

	return toPlanDomain(&planM), nil
}

// ListPlans lists plans, optionally only those offered to one audience.
func (repo *planRepository) ListPlans(ctx context.Context, audience *entity.UserType) ([]*entity.SubscriptionPlan, error) {
	var planModels []*model.SubscriptionPlanModel

	query := repo.db.WithContext(ctx).Order("amount ASC, created_at ASC")
	if audience != nil {
		query = query.Where("audience = ?", string(*audience))
	}

	if err := query.Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.SubscriptionPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

// UpdatePlan overwrites a plan's editable fields.
func (repo *planRepository) UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionPlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"name":          plan.Name,
			"amount":        plan.Amount,
			"duration_days": plan.DurationDays,
			"tax_id":        plan.TaxID,
			"description":   plan.Description,
			"is_active":     plan.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// DeletePlan removes a plan.
func (repo *planRepository) DeletePlan(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionPlanModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrPlanInUse
		}

		return errors.Wrap(result.Error, "failed to delete plan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlanDomain(data *model.SubscriptionPlanModel) *entity.SubscriptionPlan {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionPlan{
		ID:           data.ID,
		Audience:     entity.UserType(data.Audience),
		Name:         data.Name,
		Amount:       data.Amount,
		DurationDays: data.DurationDays,
		TaxID:        data.TaxID,
		Description:  data.Description,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPlanDomain(data *entity.SubscriptionPlan) *model.SubscriptionPlanModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionPlanModel{
		ID:           data.ID,
		Audience:     string(data.Audience),
		Name:         data.Name,
		Amount:       data.Amount,
		DurationDays: data.DurationDays,
		TaxID:        data.TaxID,
		Description:  data.Description,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
