package postgres

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindProductsByIDs retrieves the products with the given ids.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, p := range productModels {
		products = append(products, &entity.Product{
			ID:         p.ID,
			MerchantID: p.MerchantID,
			Name:       p.Name,
			Price:      p.Price,
			DiscountID: p.DiscountID,
		})
	}

	return products, nil
}

// AttachDiscount points the given products at a discount.
func (repo *productRepository) AttachDiscount(ctx context.Context, discountID uuid.UUID, productIDs []uuid.UUID) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ? AND discount_id IS NULL", productIDs).
		Update("discount_id", discountID)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to attach discount to products")
	}

	return result.RowsAffected, nil
}

// DetachDiscounts nulls the discount of every product pointing at one of discountIDs.
func (repo *productRepository) DetachDiscounts(ctx context.Context, discountIDs []uuid.UUID) (int64, error) {
	if len(discountIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("discount_id IN ?", discountIDs).
		Update("discount_id", nil)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to detach discounts from products")
	}

	return result.RowsAffected, nil
}
