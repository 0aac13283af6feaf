package impl

import (
	"context"
	"testing"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	mockRepo "billing/internal/mocks/repository"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	owner := entity.MerchantRef(uuid.New())
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.On("FindDevicesByOwner", ctx, owner).Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.On("CreateDevice", ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, owner, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, owner, device.Owner)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	owner := entity.CustomerRef(uuid.New())
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		Owner:    owner,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "android",
	}
	updatedDevice := &entity.UserDevice{
		ID:       deviceID,
		Owner:    owner,
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
		IsActive: true,
	}

	fx.deviceRepo.On("FindDevicesByOwner", ctx, owner).Return([]*entity.UserDevice{existingDevice}, nil)
	fx.deviceRepo.On("UpdateFCMToken", ctx, deviceID, "new-fcm-token").Return(nil)
	fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, owner, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RequiresToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), entity.MerchantRef(uuid.New()), &usecase.DeviceInfo{DeviceID: "device-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	owner := entity.MerchantRef(uuid.New())

	fx.deviceRepo.On("FindDevicesByOwner", ctx, owner).Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, owner, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by owner")
}

func TestDeviceService_GetDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	owner := entity.MerchantRef(uuid.New())
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), Owner: owner, IsActive: true},
		{ID: uuid.New(), Owner: owner, IsActive: true},
	}

	fx.deviceRepo.On("FindActiveDevicesByOwner", ctx, owner).Return(expectedDevices, nil)

	devices, err := fx.service.GetDevices(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	owner := entity.MerchantRef(uuid.New())

	tests := []struct {
		name    string
		device  *entity.UserDevice
		findErr error
		wantErr error
	}{
		{name: "own device", device: &entity.UserDevice{Owner: owner, IsActive: true}},
		{name: "same id under the other user type", device: &entity.UserDevice{Owner: entity.CustomerRef(owner.ID)}, wantErr: domainerrors.ErrForbidden},
		{name: "unknown device", findErr: repository.ErrDeviceNotFound, wantErr: domainerrors.ErrDeviceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			ctx := context.Background()
			deviceID := uuid.New()

			if tt.findErr != nil {
				fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(nil, tt.findErr)
			} else {
				tt.device.ID = deviceID
				fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(tt.device, nil)
			}
			if tt.wantErr == nil {
				fx.deviceRepo.On("DeactivateDevice", ctx, deviceID).Return(nil)
			}

			err := fx.service.DeactivateDevice(ctx, owner, deviceID)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
