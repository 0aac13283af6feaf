package postgres

import (
	"billing/internal/errors"
	"billing/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the billing tables. Only run in development;
// other environments apply reviewed migrations.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuidv7 extension")
	}

	if err := db.AutoMigrate(
		&model.MerchantModel{},
		&model.CustomerModel{},
		&model.PricingReferenceModel{},
		&model.CommissionModel{},
		&model.SubscriptionPlanModel{},
		&model.SubscriptionLogModel{},
		&model.MerchantDiscountModel{},
		&model.ProductDiscountModel{},
		&model.PromoCodeModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.RevenueSummaryModel{},
		&model.MerchantRevenueSummaryModel{},
		&model.ActivityLogModel{},
		&model.UserDeviceModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate billing schema")
	}

	return nil
}
