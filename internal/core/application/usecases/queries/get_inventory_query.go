package queries

import (
	"errors"

	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/pkg/guard"
)

var (
	ErrGetInventoryQueryIsNotConstructed = errors.New(
		"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
	)
)

// GetInventoryQuery retrieves stock positions, optionally narrowed by variant,
// color, or owning pool. All filters are conjunctive; an empty string leaves the
// corresponding dimension unfiltered.
//
// Example:
//
//	query := NewGetInventoryQuery("VF8", "", nil) // all VF8 positions
//	handler := NewGetInventoryQueryHandler(db)
//
//	positions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve inventory: %w", err)
//	}
//
//	for _, p := range positions {
//	    fmt.Printf("%s holds %d of %s/%s (%d available)\n",
//	        p.Owner, p.Quantity, p.Variant, p.Color, p.Available)
//	}
type GetInventoryQuery struct {
	variant string
	color   string
	owner   *inventory.Owner

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates an inventory query with the given filters.
// Pass empty strings and a nil owner to retrieve the whole ledger.
func NewGetInventoryQuery(variant, color string, owner *inventory.Owner) GetInventoryQuery {
	return GetInventoryQuery{
		variant: variant,
		color:   color,
		owner:   owner,
		guard:   guard.NewConstructorGuard(),
	}
}

// Variant returns the variant filter, empty when unfiltered.
func (q GetInventoryQuery) Variant() string {
	return q.variant
}

// Color returns the color filter, empty when unfiltered.
func (q GetInventoryQuery) Color() string {
	return q.color
}

// Owner returns the owner filter, nil when unfiltered.
func (q GetInventoryQuery) Owner() *inventory.Owner {
	return q.owner
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryQueryIsNotConstructed if validation fails.
func (q GetInventoryQuery) Validate() error {
	if err := q.guard.Validate(ErrGetInventoryQueryIsNotConstructed); err != nil {
		return err
	}

	if q.owner != nil {
		return q.owner.Validate()
	}
	return nil
}

// GetInventoryQueryResponse represents one stock position in the read model.
// Available is derived server-side so every screen shows the same number.
type GetInventoryQueryResponse struct {
	Owner     inventory.Owner
	Variant   string
	Color     string
	Quantity  int
	Reserved  int
	Available int
}
