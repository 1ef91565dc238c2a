package inventory

import (
	"errors"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrStockKeyIsNotConstructed is returned when a StockKey instance was not
// created through the NewStockKey factory method.
var ErrStockKeyIsNotConstructed = errors.New("StockKey must be created via NewStockKey constructor")

// StockKey identifies a stock position: a vehicle variant in a specific color.
// Together with an Owner it addresses exactly one inventory record.
// StockKey is an immutable, comparable value object and may be used as a map key.
type StockKey struct {
	variant string
	color   string

	guard guard.ConstructorGuard
}

// NewStockKey creates a stock key with non-empty variant and color.
func NewStockKey(variant, color string) (StockKey, error) {
	key := StockKey{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(key.setVariant(variant), key.setColor(color)); err != nil {
		return StockKey{}, err
	}

	return key, nil
}

// Validate ensures the StockKey was created through the constructor.
func (k StockKey) Validate() error {
	return k.guard.Validate(ErrStockKeyIsNotConstructed)
}

// Variant returns the vehicle variant identifier.
func (k StockKey) Variant() string {
	return k.variant
}

// Color returns the vehicle color.
func (k StockKey) Color() string {
	return k.color
}

// IsEqual compares two stock keys for equality.
func (k StockKey) IsEqual(other StockKey) bool {
	return k.variant == other.variant && k.color == other.color
}

// String returns "variant/color". Implements fmt.Stringer.
func (k StockKey) String() string {
	return k.variant + "/" + k.color
}

func (k *StockKey) setVariant(variant string) error {
	if variant == "" {
		return errs.NewValueIsRequiredError("variant is required")
	}
	k.variant = variant
	return nil
}

func (k *StockKey) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color is required")
	}
	k.color = color
	return nil
}
