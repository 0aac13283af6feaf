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

// pricingRepository implements the repository.PricingRepository interface.
type pricingRepository struct {
	db *gorm.DB
}

// NewPricingRepository is the constructor for pricingRepository.
func NewPricingRepository(db *gorm.DB) repository.PricingRepository {
	return &pricingRepository{
		db: db,
	}
}

func (repo *pricingRepository) ownerScope(owner entity.UserRef) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_type = ? AND owner_id = ?", string(owner.Type), owner.ID)
	}
}

// ListReferences returns the owner's references, oldest first.
func (repo *pricingRepository) ListReferences(ctx context.Context, owner entity.UserRef) ([]*entity.PricingReference, error) {
	var refModels []*model.PricingReferenceModel

	if err := repo.db.WithContext(ctx).
		Scopes(repo.ownerScope(owner)).
		Order("created_at ASC").
		Find(&refModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pricing references")
	}

	refs := make([]*entity.PricingReference, 0, len(refModels))
	for _, refM := range refModels {
		refs = append(refs, toPricingReferenceDomain(refM))
	}

	return refs, nil
}

// FindLatestReference returns the owner's most recently added reference.
func (repo *pricingRepository) FindLatestReference(ctx context.Context, owner entity.UserRef) (*entity.PricingReference, error) {
	var refM model.PricingReferenceModel

	if err := repo.db.WithContext(ctx).
		Scopes(repo.ownerScope(owner)).
		Order("created_at DESC").
		First(&refM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingReferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest pricing reference")
	}

	return toPricingReferenceDomain(&refM), nil
}

// AddReference appends a reference to the owner's collection.
func (repo *pricingRepository) AddReference(ctx context.Context, ref *entity.PricingReference) error {
	refM := fromPricingReferenceDomain(ref)

	if err := repo.db.WithContext(ctx).Create(refM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add pricing reference")
	}

	ref.ID = refM.ID
	ref.CreatedAt = refM.CreatedAt

	return nil
}

// RemoveReferencesByModel pulls every reference of the given model type from the owner.
func (repo *pricingRepository) RemoveReferencesByModel(ctx context.Context, owner entity.UserRef, modelType entity.PricingModelType) (int64, error) {
	result := repo.db.WithContext(ctx).
		Scopes(repo.ownerScope(owner)).
		Where("model_type = ?", string(modelType)).
		Delete(&model.PricingReferenceModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to remove pricing references")
	}

	return result.RowsAffected, nil
}

// RemoveReference pulls the reference pointing at a specific model document.
func (repo *pricingRepository) RemoveReference(ctx context.Context, owner entity.UserRef, modelType entity.PricingModelType, modelID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Scopes(repo.ownerScope(owner)).
		Where("model_type = ? AND model_id = ?", string(modelType), modelID).
		Delete(&model.PricingReferenceModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to remove pricing reference")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPricingReferenceDomain(data *model.PricingReferenceModel) *entity.PricingReference {
	if data == nil {
		return nil
	}

	return &entity.PricingReference{
		ID:        data.ID,
		Owner:     entity.UserRef{Type: entity.UserType(data.OwnerType), ID: data.OwnerID},
		ModelType: entity.PricingModelType(data.ModelType),
		ModelID:   data.ModelID,
		CreatedAt: data.CreatedAt,
	}
}

func fromPricingReferenceDomain(data *entity.PricingReference) *model.PricingReferenceModel {
	if data == nil {
		return nil
	}

	return &model.PricingReferenceModel{
		ID:        data.ID,
		OwnerType: string(data.Owner.Type),
		OwnerID:   data.Owner.ID,
		ModelType: string(data.ModelType),
		ModelID:   data.ModelID,
		CreatedAt: data.CreatedAt,
	}
}
