package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, owner entity.UserRef, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// GetDevices retrieves all active devices of the owner
	GetDevices(ctx context.Context, owner entity.UserRef) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, owner entity.UserRef, deviceID uuid.UUID) error
}
