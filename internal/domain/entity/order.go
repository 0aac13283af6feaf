package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is the read-side view of an order used for revenue reporting.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	MerchantID       uuid.UUID       `json:"merchant_id"`
	Status           OrderStatus     `json:"status"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	CreatedAt        time.Time       `json:"created_at"`
}
