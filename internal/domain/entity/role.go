// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role carried in an access token.
type Role string

const (
	// RoleAdmin is an admin panel operator.
	RoleAdmin Role = "admin"
	// RoleMerchant is a merchant (store owner).
	RoleMerchant Role = "merchant"
	// RoleCustomer is an ordering customer.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMerchant, RoleCustomer:
		return true
	default:
		return false
	}
}

// UserType maps the role onto the user type recorded in ledgers and audit logs.
func (r Role) UserType() UserType {
	switch r {
	case RoleAdmin:
		return UserTypeAdmin
	case RoleMerchant:
		return UserTypeMerchant
	case RoleCustomer:
		return UserTypeCustomer
	default:
		return ""
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
