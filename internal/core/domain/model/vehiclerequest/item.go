package vehiclerequest

import (
	"errors"
	"fmt"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one requested line: a vehicle variant and color, how many the dealer
// wants, and why.
type Item struct {
	variant  string
	color    string
	quantity int
	reason   string

	guard guard.ConstructorGuard
}

// NewItem creates a request line. Variant and color must be non-empty and
// quantity must be positive; the reason may be empty.
func NewItem(variant, color string, quantity int, reason string) (Item, error) {
	item := Item{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setVariant(variant),
		item.setColor(color),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Variant returns the requested vehicle variant.
func (i Item) Variant() string {
	return i.variant
}

// Color returns the requested color.
func (i Item) Color() string {
	return i.color
}

// Quantity returns how many vehicles are requested.
func (i Item) Quantity() int {
	return i.quantity
}

// Reason returns the dealer's justification for the line, possibly empty.
func (i Item) Reason() string {
	return i.reason
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
