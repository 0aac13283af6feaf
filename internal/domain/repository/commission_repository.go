package repository

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for commission persistence.
var (
	// ErrCommissionNotFound is returned when a commission is not found.
	ErrCommissionNotFound = errors.New("commission not found")
	// ErrDuplicateCommission is returned when a merchant already has a commission.
	ErrDuplicateCommission = errors.New("commission already exists")
)

// CommissionRepository defines the interface for commission-related database operations.
type CommissionRepository interface {
	CreateCommission(ctx context.Context, commission *entity.Commission) error
	FindCommissionByID(ctx context.Context, id uuid.UUID) (*entity.Commission, error)
	FindCommissionByMerchant(ctx context.Context, merchantID uuid.UUID) (*entity.Commission, error)
	UpdateCommission(ctx context.Context, commission *entity.Commission) error
	DeleteCommission(ctx context.Context, id uuid.UUID) error
}
