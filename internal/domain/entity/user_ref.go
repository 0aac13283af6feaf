package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// UserType identifies which collection a user id belongs to.
type UserType string

const (
	// UserTypeMerchant is a merchant account.
	UserTypeMerchant UserType = "Merchant"
	// UserTypeCustomer is a customer account.
	UserTypeCustomer UserType = "Customer"
	// UserTypeAdmin is an admin panel operator. Admins never own pricing.
	UserTypeAdmin UserType = "Admin"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeMerchant, UserTypeCustomer, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// CanOwnPricing reports whether accounts of this type carry a pricing reference.
func (t UserType) CanOwnPricing() bool {
	return t == UserTypeMerchant || t == UserTypeCustomer
}

// UserRef is a user id tagged with the collection it lives in.
// It is resolved once at the boundary (token role or admin route) and passed down as is.
type UserRef struct {
	Type UserType  `json:"type"`
	ID   uuid.UUID `json:"id"`
}

// MerchantRef returns a reference to a merchant account.
func MerchantRef(id uuid.UUID) UserRef {
	return UserRef{Type: UserTypeMerchant, ID: id}
}

// CustomerRef returns a reference to a customer account.
func CustomerRef(id uuid.UUID) UserRef {
	return UserRef{Type: UserTypeCustomer, ID: id}
}

// IsMerchant reports whether the reference points at a merchant.
func (r UserRef) IsMerchant() bool {
	return r.Type == UserTypeMerchant
}

// String renders the reference as "Type:id".
func (r UserRef) String() string {
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}
