package postgres

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promoCodeRepository implements the repository.PromoCodeRepository interface.
type promoCodeRepository struct {
	db *gorm.DB
}

// NewPromoCodeRepository is the constructor for promoCodeRepository.
func NewPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{
		db: db,
	}
}

// CreatePromoCode persists a new promo code.
func (repo *promoCodeRepository) CreatePromoCode(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromoCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo code")
	}

	promo.ID = promoM.ID
	promo.CreatedAt = promoM.CreatedAt
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

// FindPromoCodeByID retrieves a promo code by its unique ID.
func (repo *promoCodeRepository) FindPromoCodeByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code by ID")
	}

	return toPromoCodeDomain(&promoM), nil
}

// ListPromoCodes lists every promo code, newest first.
func (repo *promoCodeRepository) ListPromoCodes(ctx context.Context) ([]*entity.PromoCode, error) {
	var promoModels []*model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&promoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	promos := make([]*entity.PromoCode, 0, len(promoModels))
	for _, promoM := range promoModels {
		promos = append(promos, toPromoCodeDomain(promoM))
	}

	return promos, nil
}

// UpdatePromoCode overwrites a promo code.
func (repo *promoCodeRepository) UpdatePromoCode(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)

	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ?", promo.ID).
		Updates(termsUpdates(promoM.Terms, map[string]any{"code": promo.Code}))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePromoCode
		}

		return errors.Wrap(result.Error, "failed to update promo code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

// DeletePromoCode removes a promo code.
func (repo *promoCodeRepository) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromoCodeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promo code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

// DeleteExpiredPromoCodes removes promo codes whose window closed before now.
func (repo *promoCodeRepository) DeleteExpiredPromoCodes(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("valid_to < ?", now).
		Delete(&model.PromoCodeModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired promo codes")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPromoCodeDomain(data *model.PromoCodeModel) *entity.PromoCode {
	if data == nil {
		return nil
	}

	return &entity.PromoCode{
		ID:            data.ID,
		Code:          data.Code,
		DiscountTerms: toTermsDomain(data.Terms),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPromoCodeDomain(data *entity.PromoCode) *model.PromoCodeModel {
	if data == nil {
		return nil
	}

	return &model.PromoCodeModel{
		ID:        data.ID,
		Code:      data.Code,
		Terms:     fromTermsDomain(data.DiscountTerms),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
