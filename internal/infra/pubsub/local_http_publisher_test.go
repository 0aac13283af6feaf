package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get(deliverycontext.HeaderXRequestID)
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &entity.BillingEvent{
		Type:       entity.EventSubscriptionActivated,
		Owner:      entity.MerchantRef(uuid.New()),
		LogID:      uuid.New(),
		PlanID:     uuid.New(),
		EndDate:    time.Now().Add(24 * time.Hour).UTC(),
		OccurredAt: time.Now().UTC(),
	}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	require.NoError(t, publisher.PublishBillingEvent(ctx, event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, "subscription.activated", received.Message.Attributes["event_type"])
	assert.Equal(t, event.LogID.String(), received.Message.Attributes["log_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.BillingEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Owner, decoded.Owner)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishBillingEvent(context.Background(), &entity.BillingEvent{Type: entity.EventSubscriptionExpired})

	assert.Error(t, err)
}
