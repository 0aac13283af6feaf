package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/constants"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/infra/metrics"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub pushes of billing events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	metrics        *metrics.Metrics
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
	Metrics        *metrics.Metrics
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-delivered pushes carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		metrics:        params.Metrics,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyOIDCToken(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.BillingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse billing event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing billing event",
		slog.String("type", string(event.Type)),
		slog.String("owner", event.Owner.String()),
		slog.String("log_id", event.LogID.String()),
	)

	result, err := h.process(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process billing event",
			slog.String("log_id", event.LogID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops events that can never succeed
		if isRetryableError(err) {
			h.metrics.ObserveEvent(string(event.Type), "retry")

			return c.NoContent(http.StatusServiceUnavailable)
		}
		h.metrics.ObserveEvent(string(event.Type), "dropped")

		return c.NoContent(http.StatusOK)
	}

	h.metrics.ObserveEvent(string(event.Type), "delivered")
	reqLogger.Info("[Worker] Billing event processed",
		slog.String("log_id", event.LogID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return c.NoContent(http.StatusOK)
}

// process dispatches the event. Invalid events are not retried.
func (h *PushHandler) process(ctx context.Context, event *entity.BillingEvent) (*usecase.DispatchResult, error) {
	if event.Owner.ID == uuid.Nil || !event.Owner.Type.CanOwnPricing() {
		return nil, errors.Errorf("event owner %q is not a billable account", event.Owner)
	}

	result, err := h.notificationUC.DispatchBillingEvent(ctx, event)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}

		return nil, newRetryableError(err)
	}

	return result, nil
}

// extractRequestID extracts request_id from message attributes, the request context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
