package postgres

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindMerchantByID retrieves a merchant by its unique ID.
func (repo *accountRepository) FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *accountRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindAccount resolves a user reference against the table its type names.
// Reads go to the primary so the pricing version matches what a following CAS sees.
func (repo *accountRepository) FindAccount(ctx context.Context, ref entity.UserRef) (*entity.Account, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	switch ref.Type {
	case entity.UserTypeMerchant:
		var m model.MerchantModel
		if err := db.Where("id = ?", ref.ID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrAccountNotFound
			}

			return nil, errors.Wrap(err, "failed to find merchant account")
		}

		return &entity.Account{Ref: ref, Name: m.Name, PricingVersion: m.PricingVersion}, nil
	case entity.UserTypeCustomer:
		var c model.CustomerModel
		if err := db.Where("id = ?", ref.ID).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrAccountNotFound
			}

			return nil, errors.Wrap(err, "failed to find customer account")
		}

		return &entity.Account{Ref: ref, Name: c.Name, PricingVersion: c.PricingVersion}, nil
	default:
		return nil, repository.ErrAccountNotFound
	}
}

// BumpPricingVersion increments pricing_version only when it still equals expected.
func (repo *accountRepository) BumpPricingVersion(ctx context.Context, ref entity.UserRef, expected int64) error {
	var target any
	switch ref.Type {
	case entity.UserTypeMerchant:
		target = &model.MerchantModel{}
	case entity.UserTypeCustomer:
		target = &model.CustomerModel{}
	default:
		return repository.ErrAccountNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(target).
		Where("id = ? AND pricing_version = ?", ref.ID, expected).
		Update("pricing_version", gorm.Expr("pricing_version + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to bump pricing version")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPricingVersionConflict
	}

	return nil
}

// CountMerchantsOpenedToday counts merchants whose store opened today.
func (repo *accountRepository) CountMerchantsOpenedToday(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("opened_today = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count merchants opened today")
	}

	return count, nil
}

// ResetOpenedToday clears the opened-today flag on every merchant.
func (repo *accountRepository) ResetOpenedToday(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("opened_today = ?", true).
		Update("opened_today", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reset opened today")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		OpenedToday:    data.OpenedToday,
		PricingVersion: data.PricingVersion,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		PricingVersion: data.PricingVersion,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
