package impl

import (
	"context"
	"strings"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, owner entity.UserRef, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if !owner.Type.CanOwnPricing() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only merchants and customers register devices")
	}
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "fcm_token and device_id are required")
	}

	devices, err := s.deviceRepo.FindDevicesByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	// A known device only gets its token refreshed (and is reactivated).
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}
		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}
		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	}

	now := nowFunc()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		Owner:     owner,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// GetDevices retrieves all active devices of the owner
func (s *deviceService) GetDevices(ctx context.Context, owner entity.UserRef) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by owner")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, owner entity.UserRef, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String())
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.Owner != owner {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another account")
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
