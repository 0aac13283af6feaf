package repository

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
)

// ErrPricingReferenceNotFound is returned when an owner holds no pricing reference.
var ErrPricingReferenceNotFound = errors.New("pricing reference not found")

// PricingRepository manages the ordered pricing references of merchants and customers.
type PricingRepository interface {
	// ListReferences returns the owner's references, oldest first.
	ListReferences(ctx context.Context, owner entity.UserRef) ([]*entity.PricingReference, error)

	// FindLatestReference returns the owner's most recently added reference.
	FindLatestReference(ctx context.Context, owner entity.UserRef) (*entity.PricingReference, error)

	// AddReference appends a reference to the owner's collection.
	AddReference(ctx context.Context, ref *entity.PricingReference) error

	// RemoveReferencesByModel pulls every reference of the given model type from the owner.
	RemoveReferencesByModel(ctx context.Context, owner entity.UserRef, modelType entity.PricingModelType) (int64, error)

	// RemoveReference pulls the reference pointing at a specific model document.
	RemoveReference(ctx context.Context, owner entity.UserRef, modelType entity.PricingModelType, modelID uuid.UUID) (int64, error)
}
