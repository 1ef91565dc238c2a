package kernel

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

// Role identifies the kind of actor issuing a workflow command.
// Every workflow binds its legal transitions to exactly one role, so
// authorization decisions live in the transition tables instead of being
// scattered across handlers and views.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// DealerManager confirms, rejects, or cancels newly created orders,
	// confirms or fails payments, and raises vehicle requests.
	DealerManager

	// DealerStaff creates orders, invoices allocated orders, cancels allocated
	// orders, and drives deliveries.
	DealerStaff

	// ManufacturerStaff allocates confirmed orders against manufacturer stock
	// or rejects them, and approves or rejects vehicle requests.
	ManufacturerStaff
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		DealerManager:     "dealer_manager",
		DealerStaff:       "dealer_staff",
		ManufacturerStaff: "manufacturer_staff",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		DealerManager:     "dealer_manager",
		DealerStaff:       "dealer_staff",
		ManufacturerStaff: "manufacturer_staff",
	}
}

// RoleFromString parses a role from its wire representation
// ("dealer_manager", "dealer_staff", "manufacturer_staff").
// Returns an error for unrecognized values.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any out-of-range values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
