package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	created map[string]interface{}
	resp    map[string]interface{}
	err     error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.created = data

	return f.resp, f.err
}

func (f *fakeOrders) Fetch(_ string, _ map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	return f.resp, f.err
}

func newTestGateway(orders orderAPI) *razorpayGateway {
	return newRazorpayGateway(orders, NewSigner("secret"), "rzp_test_key", "INR", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRazorpayGateway_CreateOrder_SendsPaise(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{
		"id":       "order_123",
		"amount":   float64(49950),
		"currency": "INR",
		"receipt":  "sub_m_p",
		"notes":    map[string]interface{}{"user_id": "u1"},
	}}
	gw := newTestGateway(orders)

	order, err := gw.CreateOrder(context.Background(), decimal.RequireFromString("499.50"), "sub_m_p", map[string]string{"user_id": "u1"})
	require.NoError(t, err)

	assert.Equal(t, int64(49950), orders.created["amount"])
	assert.Equal(t, "INR", orders.created["currency"])
	assert.Equal(t, "sub_m_p", orders.created["receipt"])

	assert.Equal(t, "order_123", order.OrderID)
	assert.True(t, decimal.RequireFromString("499.5").Equal(order.Amount))
	assert.Equal(t, "rzp_test_key", order.KeyID)
	assert.Equal(t, map[string]string{"user_id": "u1"}, orders.created["notes"])
	assert.Equal(t, "u1", order.Notes["user_id"])
}

func TestRazorpayGateway_FetchOrder_EmptyNotes(t *testing.T) {
	gw := newTestGateway(&fakeOrders{resp: map[string]interface{}{
		"id":     "order_9",
		"amount": float64(100),
		"notes":  []interface{}{},
	}})

	order, err := gw.FetchOrder(context.Background(), "order_9")
	require.NoError(t, err)

	assert.Nil(t, order.Notes)
	assert.Equal(t, "INR", order.Currency)
}

func TestRazorpayGateway_CreateOrder_GatewayError(t *testing.T) {
	gw := newTestGateway(&fakeOrders{err: errors.New("BAD_REQUEST_ERROR")})

	_, err := gw.CreateOrder(context.Background(), decimal.NewFromInt(10), "r", nil)
	assert.Error(t, err)
}

func TestRazorpayGateway_CreateOrder_MissingID(t *testing.T) {
	gw := newTestGateway(&fakeOrders{resp: map[string]interface{}{"amount": float64(100)}})

	_, err := gw.CreateOrder(context.Background(), decimal.NewFromInt(1), "r", nil)
	assert.Error(t, err)
}

func TestRazorpayGateway_CreateOrder_CancelledContext(t *testing.T) {
	orders := &fakeOrders{}
	gw := newTestGateway(orders)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.CreateOrder(ctx, decimal.NewFromInt(1), "r", nil)
	assert.Error(t, err)
	assert.Nil(t, orders.created)
}
