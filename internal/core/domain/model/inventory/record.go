package inventory

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through the NewRecord or RestoreRecord factory methods.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrInsufficientStock is the unwrap target for InsufficientStockError.
	// It indicates that an operation asked for more units than are available.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a stock operation that could not be satisfied.
// It carries the short position and quantities so the caller can surface exactly
// which item fell short and by how much.
type InsufficientStockError struct {
	Owner     Owner
	Key       StockKey
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// position and quantities.
func NewInsufficientStockError(owner Owner, key StockKey, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{Owner: owner, Key: key, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s has %d of %s available, %d requested",
		ErrInsufficientStock, e.Owner, e.Available, e.Key, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Record is an inventory ledger entry: the stock position of one owner for one
// (variant, color) key.
//
// Record maintains the invariant 0 <= reserved <= quantity at all times.
// Available stock is quantity minus reserved. All mutations go through the
// Reserve, Release, TransferOut, and TransferIn operations; a failed operation
// leaves the record unchanged.
type Record struct {
	id       kernel.UUID
	owner    Owner
	key      StockKey
	quantity int
	reserved int

	guard guard.ConstructorGuard
}

// NewRecord creates a stock record with the given on-hand quantity and nothing
// reserved. Quantity must not be negative; zero is valid and is used for
// freshly created destination records during a transfer.
func NewRecord(id kernel.UUID, owner Owner, key StockKey, quantity int) (*Record, error) {
	record := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOwner(owner),
		record.setKey(key),
		record.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a stock record from persistent storage, including
// its reserved count.
func RestoreRecord(id kernel.UUID, owner Owner, key StockKey, quantity, reserved int) (*Record, error) {
	record, err := NewRecord(id, owner, key, quantity)
	if err != nil {
		return nil, err
	}

	if err = record.setReserved(reserved); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Owner returns the party holding this stock.
func (r *Record) Owner() Owner {
	return r.owner
}

// Key returns the (variant, color) position this record tracks.
func (r *Record) Key() StockKey {
	return r.key
}

// Quantity returns the total units owned, including reserved ones.
func (r *Record) Quantity() int {
	return r.quantity
}

// Reserved returns the units committed to in-flight workflows.
func (r *Record) Reserved() int {
	return r.reserved
}

// Available returns the units free to be reserved: quantity minus reserved.
func (r *Record) Available() int {
	return r.quantity - r.reserved
}

// Reserve places a hold on qty units, incrementing the reserved count.
//
// Returns *InsufficientStockError if fewer than qty units are available;
// the record is left unchanged in that case.
func (r *Record) Reserve(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}

	if r.Available() < qty {
		return NewInsufficientStockError(r.owner, r.key, qty, r.Available())
	}

	r.reserved += qty
	return nil
}

// Release drops a hold on qty units, decrementing the reserved count.
// Returns an error if more units would be released than are reserved.
func (r *Record) Release(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}

	if qty > r.reserved {
		return errs.NewValueIsOutOfRangeError("release quantity", qty, 0, r.reserved)
	}

	r.reserved -= qty
	return nil
}

// TransferOut removes qty previously reserved units from this record, the
// outbound half of a pool-to-pool transfer. The units must have been reserved
// first; quantity and reserved both decrease.
func (r *Record) TransferOut(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}

	if qty > r.reserved || qty > r.quantity {
		return NewInsufficientStockError(r.owner, r.key, qty, r.reserved)
	}

	r.quantity -= qty
	r.reserved -= qty
	return nil
}

// TransferIn adds qty units to this record, the inbound half of a pool-to-pool
// transfer. The units arrive unreserved.
func (r *Record) TransferIn(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}

	r.quantity += qty
	return nil
}

func validateQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOwner(owner Owner) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	r.owner = owner
	return nil
}

func (r *Record) setKey(key StockKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	r.key = key
	return nil
}

func (r *Record) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	r.quantity = quantity
	return nil
}

func (r *Record) setReserved(reserved int) error {
	if reserved < 0 || reserved > r.quantity {
		return errs.NewValueIsOutOfRangeError("reserved", reserved, 0, r.quantity)
	}
	r.reserved = reserved
	return nil
}
