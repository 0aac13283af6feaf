package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode is how a subscription period is paid for.
type PaymentMode string

const (
	// PaymentModeOnline is paid through the payment gateway.
	PaymentModeOnline PaymentMode = "Online"
	// PaymentModeCash is collected out of band and confirmed by an admin.
	PaymentModeCash PaymentMode = "Cash"
)

// IsValid checks if the PaymentMode is a valid value.
func (m PaymentMode) IsValid() bool {
	return m == PaymentModeOnline || m == PaymentModeCash
}

// PaymentStatus is the settlement state of a ledger entry.
type PaymentStatus string

const (
	// PaymentStatusPaid is settled.
	PaymentStatusPaid PaymentStatus = "Paid"
	// PaymentStatusUnpaid is awaiting cash collection.
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	// PaymentStatusPending is awaiting an external confirmation.
	PaymentStatusPending PaymentStatus = "Pending"
)

// SubscriptionLog is one ledger entry: a single purchased or renewed period.
type SubscriptionLog struct {
	ID                uuid.UUID       `json:"id"`
	PlanID            uuid.UUID       `json:"plan_id"`
	UserID            uuid.UUID       `json:"user_id"`
	TypeOfUser        UserType        `json:"type_of_user"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentMode       PaymentMode     `json:"payment_mode"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	RazorpayOrderID   *string         `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID *string         `json:"razorpay_payment_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Owner returns the reference of the user the entry belongs to.
func (l *SubscriptionLog) Owner() UserRef {
	return UserRef{Type: l.TypeOfUser, ID: l.UserID}
}

// IsPaid reports whether the entry is settled.
func (l *SubscriptionLog) IsPaid() bool {
	return l.PaymentStatus == PaymentStatusPaid
}

// CoversBilling reports whether the entry is a paid period that has not ended at now.
func (l *SubscriptionLog) CoversBilling(now time.Time) bool {
	return l.IsPaid() && l.EndDate.After(now)
}
