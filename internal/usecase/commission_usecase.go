package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionInput is the editable part of a commission.
type CommissionInput struct {
	CommissionType  entity.CommissionType
	CommissionValue decimal.Decimal
}

// CommissionUsecase administers merchant commissions.
type CommissionUsecase interface {
	AddCommission(ctx context.Context, merchantID uuid.UUID, input *CommissionInput) (*entity.Commission, error)
	EditCommission(ctx context.Context, commissionID uuid.UUID, input *CommissionInput) (*entity.Commission, error)
	GetCommission(ctx context.Context, merchantID uuid.UUID) (*entity.Commission, error)
}
