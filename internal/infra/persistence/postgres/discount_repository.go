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

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// CreateMerchantDiscount persists a new store-wide discount.
func (repo *discountRepository) CreateMerchantDiscount(ctx context.Context, discount *entity.MerchantDiscount) error {
	discountM := fromMerchantDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt
	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

// FindMerchantDiscountByID retrieves a store-wide discount by its unique ID.
func (repo *discountRepository) FindMerchantDiscountByID(ctx context.Context, id uuid.UUID) (*entity.MerchantDiscount, error) {
	var discountM model.MerchantDiscountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant discount by ID")
	}

	return toMerchantDiscountDomain(&discountM), nil
}

// ListMerchantDiscounts lists a merchant's store-wide discounts, newest first.
func (repo *discountRepository) ListMerchantDiscounts(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantDiscount, error) {
	var discountModels []*model.MerchantDiscountModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merchant discounts")
	}

	discounts := make([]*entity.MerchantDiscount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toMerchantDiscountDomain(discountM))
	}

	return discounts, nil
}

// UpdateMerchantDiscount overwrites a discount's title and terms.
func (repo *discountRepository) UpdateMerchantDiscount(ctx context.Context, discount *entity.MerchantDiscount) error {
	discountM := fromMerchantDiscountDomain(discount)

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantDiscountModel{}).
		Where("id = ?", discount.ID).
		Updates(termsUpdates(discountM.Terms, map[string]any{"title": discount.Title}))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update merchant discount")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// UpdateMerchantDiscountStatus flips the manual on/off switch.
func (repo *discountRepository) UpdateMerchantDiscountStatus(ctx context.Context, id uuid.UUID, status bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantDiscountModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update merchant discount status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// DeleteMerchantDiscount removes a store-wide discount.
func (repo *discountRepository) DeleteMerchantDiscount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MerchantDiscountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete merchant discount")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// DeleteExpiredMerchantDiscounts removes merchant discounts whose window closed before now.
func (repo *discountRepository) DeleteExpiredMerchantDiscounts(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("valid_to < ?", now).
		Delete(&model.MerchantDiscountModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired merchant discounts")
	}

	return result.RowsAffected, nil
}

// CreateProductDiscount persists a new product discount.
func (repo *discountRepository) CreateProductDiscount(ctx context.Context, discount *entity.ProductDiscount) error {
	discountM := fromProductDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt
	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

// FindProductDiscountByID retrieves a product discount together with the products pointing at it.
func (repo *discountRepository) FindProductDiscountByID(ctx context.Context, id uuid.UUID) (*entity.ProductDiscount, error) {
	var discountM model.ProductDiscountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find product discount by ID")
	}

	var productIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("discount_id = ?", id).
		Pluck("id", &productIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list discounted products")
	}

	discount := toProductDiscountDomain(&discountM)
	discount.ProductIDs = productIDs

	return discount, nil
}

// DeleteProductDiscounts removes product discounts by id.
func (repo *discountRepository) DeleteProductDiscounts(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.ProductDiscountModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete product discounts")
	}

	return result.RowsAffected, nil
}

// FindExpiredProductDiscountIDs lists product discounts whose window closed before now.
func (repo *discountRepository) FindExpiredProductDiscountIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductDiscountModel{}).
		Where("valid_to < ?", now).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired product discounts")
	}

	return ids, nil
}

// --- Mapper Functions ---

func termsUpdates(terms model.DiscountTermsColumns, extra map[string]any) map[string]any {
	updates := map[string]any{
		"discount_type":   terms.DiscountType,
		"value":           terms.Value,
		"max_discount":    terms.MaxDiscount,
		"min_order_value": terms.MinOrderValue,
		"valid_from":      terms.ValidFrom,
		"valid_to":        terms.ValidTo,
		"status":          terms.Status,
	}
	for k, v := range extra {
		updates[k] = v
	}

	return updates
}

func toTermsDomain(data model.DiscountTermsColumns) entity.DiscountTerms {
	return entity.DiscountTerms{
		DiscountType:  entity.DiscountType(data.DiscountType),
		Value:         data.Value,
		MaxDiscount:   data.MaxDiscount,
		MinOrderValue: data.MinOrderValue,
		ValidFrom:     data.ValidFrom,
		ValidTo:       data.ValidTo,
		Status:        data.Status,
	}
}

func fromTermsDomain(data entity.DiscountTerms) model.DiscountTermsColumns {
	return model.DiscountTermsColumns{
		DiscountType:  string(data.DiscountType),
		Value:         data.Value,
		MaxDiscount:   data.MaxDiscount,
		MinOrderValue: data.MinOrderValue,
		ValidFrom:     data.ValidFrom,
		ValidTo:       data.ValidTo,
		Status:        data.Status,
	}
}

func toMerchantDiscountDomain(data *model.MerchantDiscountModel) *entity.MerchantDiscount {
	if data == nil {
		return nil
	}

	return &entity.MerchantDiscount{
		ID:            data.ID,
		MerchantID:    data.MerchantID,
		Title:         data.Title,
		DiscountTerms: toTermsDomain(data.Terms),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromMerchantDiscountDomain(data *entity.MerchantDiscount) *model.MerchantDiscountModel {
	if data == nil {
		return nil
	}

	return &model.MerchantDiscountModel{
		ID:         data.ID,
		MerchantID: data.MerchantID,
		Title:      data.Title,
		Terms:      fromTermsDomain(data.DiscountTerms),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toProductDiscountDomain(data *model.ProductDiscountModel) *entity.ProductDiscount {
	if data == nil {
		return nil
	}

	return &entity.ProductDiscount{
		ID:            data.ID,
		MerchantID:    data.MerchantID,
		Title:         data.Title,
		DiscountTerms: toTermsDomain(data.Terms),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProductDiscountDomain(data *entity.ProductDiscount) *model.ProductDiscountModel {
	if data == nil {
		return nil
	}

	return &model.ProductDiscountModel{
		ID:         data.ID,
		MerchantID: data.MerchantID,
		Title:      data.Title,
		Terms:      fromTermsDomain(data.DiscountTerms),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
