package order

import (
	"errors"
	"fmt"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single ordered line: a vehicle variant in a specific color, with
// the requested quantity and the unit price agreed at order time.
// Item is a value object; it is immutable after construction.
type Item struct {
	variant   string
	color     string
	quantity  int
	unitPrice int64

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
// Variant and color must be non-empty, quantity must be positive, and the unit
// price must not be negative.
func NewItem(variant, color string, quantity int, unitPrice int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setVariant(variant),
		item.setColor(color),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Variant returns the vehicle variant identifier.
func (i Item) Variant() string {
	return i.variant
}

// Color returns the vehicle color.
func (i Item) Color() string {
	return i.color
}

// Quantity returns the requested number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the agreed price per unit, in the smallest currency unit.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

func (i *Item) setVariant(variant string) error {
	if variant == "" {
		return errs.NewValueIsRequiredError("variant is required")
	}
	i.variant = variant
	return nil
}

func (i *Item) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color is required")
	}
	i.color = color
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%d is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
