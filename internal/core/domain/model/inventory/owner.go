package inventory

import (
	"errors"
	"fmt"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrOwnerIsNotConstructed is returned when an Owner instance was not created
// through the ManufacturerPool or DealerPool factory methods.
var ErrOwnerIsNotConstructed = errors.New("Owner must be created via ManufacturerPool or DealerPool constructor")

const manufacturerOwnerString = "manufacturer"

const dealerOwnerPrefix = "dealer:"

// Owner identifies the party holding title to inventory units: either the
// single manufacturer pool or a specific dealer's pool.
// Owner is an immutable value object.
type Owner struct {
	dealerID *kernel.UUID

	guard guard.ConstructorGuard
}

// ManufacturerPool returns the owner representing manufacturer-held stock.
func ManufacturerPool() Owner {
	return Owner{
		guard: guard.NewConstructorGuard(),
	}
}

// DealerPool returns the owner representing stock held by the given dealer.
func DealerPool(dealerID kernel.UUID) (Owner, error) {
	if err := dealerID.Validate(); err != nil {
		return Owner{}, err
	}

	return Owner{
		dealerID: &dealerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OwnerFromString parses an owner from its wire representation:
// "manufacturer" or "dealer:<uuid>". Used when reconstructing records from
// persistence and when parsing query parameters.
func OwnerFromString(s string) (Owner, error) {
	if s == manufacturerOwnerString {
		return ManufacturerPool(), nil
	}

	if raw, ok := strings.CutPrefix(s, dealerOwnerPrefix); ok {
		dealerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return Owner{}, err
		}
		return DealerPool(dealerID)
	}

	return Owner{}, errs.NewValueIsInvalidErrorWithCause(
		"owner is invalid",
		fmt.Errorf("%q is not a valid owner", s),
	)
}

// Validate ensures the Owner was created through a constructor.
func (o Owner) Validate() error {
	return o.guard.Validate(ErrOwnerIsNotConstructed)
}

// IsManufacturer reports whether this owner is the manufacturer pool.
func (o Owner) IsManufacturer() bool {
	return o.dealerID == nil
}

// DealerID returns the owning dealer's identifier, or nil for the
// manufacturer pool.
func (o Owner) DealerID() *kernel.UUID {
	return o.dealerID
}

// IsEqual compares two owners for equality.
func (o Owner) IsEqual(other Owner) bool {
	if o.IsManufacturer() || other.IsManufacturer() {
		return o.IsManufacturer() == other.IsManufacturer()
	}
	return o.dealerID.IsEqual(*other.dealerID)
}

// String returns the wire representation: "manufacturer" or "dealer:<uuid>".
// Implements fmt.Stringer.
func (o Owner) String() string {
	if o.IsManufacturer() {
		return manufacturerOwnerString
	}
	return dealerOwnerPrefix + o.dealerID.String()
}
