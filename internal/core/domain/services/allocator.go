package services

import (
	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/pkg/errs"
)

// AllocationLine is one demand row of an allocation: how many units of a stock
// position must move between pools. Lines are decoupled from order and
// vehicle-request item types so both workflows share the same contract.
type AllocationLine struct {
	Key inventory.StockKey
	Qty int
}

// Allocator is a domain service that moves stock between two owner pools as one
// all-or-nothing operation: every line is checked against the source records
// first, and only if all lines are satisfiable are any records mutated.
//
// The composite per line is Reserve followed by TransferOut on the source record
// and TransferIn on the destination record, so no intermediate
// reserved-but-unassigned state is observable outside the operation. Run inside
// a single transaction with the records loaded under row locks, this is the
// critical section that keeps two competing allocations from both succeeding on
// the same stock.
//
// The same service backs order allocation (manufacturer pool to dealer pool),
// dealer-side cancellation after allocation (dealer pool back to manufacturer
// pool), and vehicle request approval (manufacturer pool to the requesting
// dealer's pool).
type Allocator struct{}

// NewAllocator creates a new Allocator instance.
func NewAllocator() Allocator {
	return Allocator{}
}

// Allocate moves the demanded stock from the source records into the
// destination records, all-or-nothing.
//
// The caller supplies one source and one destination record per stock key
// appearing in the lines; destination records for keys the destination owner
// has never stocked are created empty by the caller before the call. Lines for
// the same key are aggregated before checking, so an order with two lines for
// the same position cannot pass the check individually but fail in sum.
//
// Returns:
//   - nil on success, with all records mutated
//   - *inventory.InsufficientStockError naming the first short position, with
//     no record mutated
//   - a validation error if a needed record is missing or not constructed
func (a Allocator) Allocate(
	lines []AllocationLine,
	source map[inventory.StockKey]*inventory.Record,
	dest map[inventory.StockKey]*inventory.Record,
) error {
	demand, err := a.aggregateDemand(lines)
	if err != nil {
		return err
	}

	// Feasibility pass: nothing is mutated until every position checks out.
	for _, d := range demand {
		src, ok := source[d.Key]
		if !ok {
			return errs.NewValueIsRequiredError("source record for " + d.Key.String())
		}
		if err := src.Validate(); err != nil {
			return err
		}

		dst, ok := dest[d.Key]
		if !ok {
			return errs.NewValueIsRequiredError("destination record for " + d.Key.String())
		}
		if err := dst.Validate(); err != nil {
			return err
		}

		if src.Available() < d.Qty {
			return inventory.NewInsufficientStockError(src.Owner(), d.Key, d.Qty, src.Available())
		}
	}

	for _, d := range demand {
		src := source[d.Key]
		dst := dest[d.Key]

		if err := src.Reserve(d.Qty); err != nil {
			return err
		}
		if err := src.TransferOut(d.Qty); err != nil {
			return err
		}
		if err := dst.TransferIn(d.Qty); err != nil {
			return err
		}
	}

	return nil
}

// aggregateDemand sums line quantities per stock key, preserving first-seen
// key order so error reporting is deterministic.
func (a Allocator) aggregateDemand(lines []AllocationLine) ([]AllocationLine, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("allocation lines are required")
	}

	index := make(map[inventory.StockKey]int, len(lines))
	demand := make([]AllocationLine, 0, len(lines))

	for _, line := range lines {
		if err := line.Key.Validate(); err != nil {
			return nil, err
		}
		if line.Qty <= 0 {
			return nil, errs.NewValueIsInvalidError("allocation line qty is invalid")
		}

		if i, ok := index[line.Key]; ok {
			demand[i].Qty += line.Qty
			continue
		}

		index[line.Key] = len(demand)
		demand = append(demand, line)
	}

	return demand, nil
}
