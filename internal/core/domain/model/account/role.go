package account

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Role identifies what kind of actor is issuing a request. Behavior that
// depends on the actor (most prominently the cancellation policy) branches on
// the role through explicit capability checks rather than per-role types.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is a plain customer: may act only on their own orders.
	RoleCustomer

	// RoleWaiter is floor staff.
	RoleWaiter

	// RoleChef is kitchen staff.
	RoleChef

	// RoleAdmin is a manager with unrestricted staff capabilities.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleWaiter:   "Waiter",
		RoleChef:     "Chef",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString resolves a role by name, matching case-insensitively.
// Returns a ValueIsInvalidError for names outside the valid set.
func RoleFromString(name string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && strings.EqualFold(str, name) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", name))
}

// Validate checks if the Role value is one of the closed set.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleWaiter && r != RoleChef && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsStaff reports whether the role belongs to restaurant staff.
// Staff may act on any order; customers only on their own.
func (r Role) IsStaff() bool {
	return r == RoleWaiter || r == RoleChef || r == RoleAdmin
}
