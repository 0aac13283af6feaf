package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountTermsColumns are the columns every discount table shares.
type DiscountTermsColumns struct {
	DiscountType  string          `gorm:"type:varchar(16);not null"`
	Value         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MaxDiscount   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	MinOrderValue decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ValidFrom     time.Time       `gorm:"not null"`
	ValidTo       time.Time       `gorm:"not null;index"`
	Status        bool            `gorm:"not null;default:true"`
}

// MerchantDiscountModel is the GORM-specific struct for the 'merchant_discounts' table.
type MerchantDiscountModel struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title      string               `gorm:"type:varchar(255);not null"`
	Terms      DiscountTermsColumns `gorm:"embedded"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantDiscountModel) TableName() string {
	return "merchant_discounts"
}

// ProductDiscountModel is the GORM-specific struct for the 'product_discounts' table.
type ProductDiscountModel struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title      string               `gorm:"type:varchar(255);not null"`
	Terms      DiscountTermsColumns `gorm:"embedded"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductDiscountModel) TableName() string {
	return "product_discounts"
}

// PromoCodeModel is the GORM-specific struct for the 'promo_codes' table.
type PromoCodeModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string               `gorm:"type:varchar(64);not null;uniqueIndex"`
	Terms     DiscountTermsColumns `gorm:"embedded"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}

// ProductModel maps the billing columns of the 'products' table.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
