package repository

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for an account.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByOwner retrieves all devices of an account (including inactive).
	FindDevicesByOwner(ctx context.Context, owner entity.UserRef) ([]*entity.UserDevice, error)

	// FindActiveDevicesByOwner retrieves all active devices of an account.
	FindActiveDevicesByOwner(ctx context.Context, owner entity.UserRef) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateTokens marks every device holding one of the tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) (int64, error)
}
