package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	batches [][]string
}

func (r *recordingSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	r.batches = append(r.batches, message.Tokens)
	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func TestFirebaseService_SendBatchNotification_Chunks(t *testing.T) {
	sender := &recordingSender{}
	svc := newFirebaseService(sender, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = "token"
	}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), tokens, "Subscription active", "Your plan is live", nil)

	require.NoError(t, err)
	assert.Equal(t, 1201, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[2], 201)
}

func TestFirebaseService_SendBatchNotification_NoTokens(t *testing.T) {
	sender := &recordingSender{}
	svc := newFirebaseService(sender, slog.New(slog.NewTextHandler(io.Discard, nil)))

	success, _, _, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)

	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Empty(t, sender.batches)
}
