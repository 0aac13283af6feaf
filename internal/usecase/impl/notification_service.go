package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
	"billing/internal/usecase"

	"go.uber.org/fx"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type notificationService struct {
	deviceRepo repository.DeviceRepository
	notifier   service.NotificationService
	activity   usecase.ActivityUsecase
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Notifier   service.NotificationService
	Activity   usecase.ActivityUsecase
	Logger     *slog.Logger
}

// NewNotificationService creates the push dispatcher for billing events.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo: params.DeviceRepo,
		notifier:   params.Notifier,
		activity:   params.Activity,
		logger:     params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) DispatchBillingEvent(ctx context.Context, event *entity.BillingEvent) (*usecase.DispatchResult, error) {
	title, body, ok := eventMessage(event)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown billing event type %q", event.Type)
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByOwner(ctx, event.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	result := &usecase.DispatchResult{}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":     string(event.Type),
		"log_id":   event.LogID.String(),
		"plan_id":  event.PlanID.String(),
		"end_date": event.EndDate.Format(time.RFC3339),
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		batch := tokens[start:min(start+firebaseBatchSize, len(tokens))]

		sent, failed, invalid, err := srv.notifier.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			srv.log(ctx).Warn("Failed to send notification batch", slog.Int("size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}
		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
		result.InvalidTokens = int(deactivated)
	}

	srv.activity.Record(ctx, event.Owner, "Billing notification sent", map[string]any{
		"event":  string(event.Type),
		"log_id": event.LogID.String(),
		"sent":   result.Sent,
		"failed": result.Failed,
	})

	return result, nil
}

// eventMessage returns the push title and body for an event.
func eventMessage(event *entity.BillingEvent) (title, body string, ok bool) {
	switch event.Type {
	case entity.EventSubscriptionActivated:
		return "Subscription active",
			fmt.Sprintf("Your subscription is active until %s.", event.EndDate.Format("02 Jan 2006")), true
	case entity.EventSubscriptionExpired:
		return "Subscription expired",
			"Your subscription has ended. Renew it to keep zero-commission orders.", true
	default:
		return "", "", false
	}
}
