// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when a merchant or customer does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrPricingVersionConflict is returned when the pricing version moved since it was read.
	ErrPricingVersionConflict = errors.New("pricing version conflict")
)

// AccountRepository reads merchant and customer accounts and guards their pricing version.
type AccountRepository interface {
	// FindMerchantByID retrieves a merchant by its unique ID.
	FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindAccount resolves a user reference into the collection its type names.
	FindAccount(ctx context.Context, ref entity.UserRef) (*entity.Account, error)

	// BumpPricingVersion increments the pricing version only if it still equals expected.
	// Returns ErrPricingVersionConflict when another writer got there first.
	BumpPricingVersion(ctx context.Context, ref entity.UserRef, expected int64) error

	// CountMerchantsOpenedToday counts merchants whose store opened today.
	CountMerchantsOpenedToday(ctx context.Context) (int64, error)

	// ResetOpenedToday clears the opened-today flag on every merchant.
	ResetOpenedToday(ctx context.Context) (int64, error)
}
