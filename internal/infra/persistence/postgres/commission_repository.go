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

// commissionRepository implements the repository.CommissionRepository interface.
type commissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository is the constructor for commissionRepository.
func NewCommissionRepository(db *gorm.DB) repository.CommissionRepository {
	return &commissionRepository{
		db: db,
	}
}

// CreateCommission persists a new commission for a merchant.
func (repo *commissionRepository) CreateCommission(ctx context.Context, commission *entity.Commission) error {
	commissionM := fromCommissionDomain(commission)

	if err := repo.db.WithContext(ctx).Create(commissionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCommission
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create commission")
	}

	commission.ID = commissionM.ID
	commission.CreatedAt = commissionM.CreatedAt
	commission.UpdatedAt = commissionM.UpdatedAt

	return nil
}

// FindCommissionByID retrieves a commission by its unique ID.
func (repo *commissionRepository) FindCommissionByID(ctx context.Context, id uuid.UUID) (*entity.Commission, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindCommissionByMerchant retrieves the commission of a merchant.
func (repo *commissionRepository) FindCommissionByMerchant(ctx context.Context, merchantID uuid.UUID) (*entity.Commission, error) {
	return repo.findOne(ctx, "merchant_id = ?", merchantID)
}

func (repo *commissionRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Commission, error) {
	var commissionM model.CommissionModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&commissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find commission")
	}

	return toCommissionDomain(&commissionM), nil
}

// UpdateCommission updates the type and value of a commission in place.
func (repo *commissionRepository) UpdateCommission(ctx context.Context, commission *entity.Commission) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommissionModel{}).
		Where("id = ?", commission.ID).
		Updates(map[string]any{
			"commission_type":  string(commission.CommissionType),
			"commission_value": commission.CommissionValue,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update commission")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommissionNotFound
	}

	return nil
}

// DeleteCommission removes a commission by its ID.
func (repo *commissionRepository) DeleteCommission(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommissionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete commission")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommissionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCommissionDomain(data *model.CommissionModel) *entity.Commission {
	if data == nil {
		return nil
	}

	return &entity.Commission{
		ID:              data.ID,
		MerchantID:      data.MerchantID,
		CommissionType:  entity.CommissionType(data.CommissionType),
		CommissionValue: data.CommissionValue,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCommissionDomain(data *entity.Commission) *model.CommissionModel {
	if data == nil {
		return nil
	}

	return &model.CommissionModel{
		ID:              data.ID,
		MerchantID:      data.MerchantID,
		CommissionType:  string(data.CommissionType),
		CommissionValue: data.CommissionValue,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
