package commands

import (
	"context"
	"errors"
	"sort"

	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/services"
	"dealership/internal/core/ports"
	"dealership/internal/pkg/errs"
)

// moveStock runs the Allocator between two owner pools inside the caller's
// transaction: it loads every involved record under a row lock, creates empty
// destination records for positions the destination owner has never stocked,
// and persists all mutated records. The caller commits or rolls back.
//
// Order allocation calls this manufacturer-to-dealer; cancellation after
// allocation calls it dealer-to-manufacturer with the same lines, which undoes
// the transfer exactly. Vehicle request approval reuses the
// manufacturer-to-dealer direction.
func moveStock(
	ctx context.Context,
	invRepo ports.InventoryRepository,
	lines []services.AllocationLine,
	from inventory.Owner,
	to inventory.Owner,
) error {
	demand := make(map[inventory.StockKey]int, len(lines))
	for _, line := range lines {
		demand[line.Key] += line.Qty
	}

	// Rows are locked in a stable key order. Two concurrent allocations naming
	// the same positions then always acquire locks in the same sequence and
	// cannot deadlock each other.
	keys := make([]inventory.StockKey, 0, len(demand))
	for key := range demand {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Variant() != keys[j].Variant() {
			return keys[i].Variant() < keys[j].Variant()
		}
		return keys[i].Color() < keys[j].Color()
	})

	source := make(map[inventory.StockKey]*inventory.Record, len(keys))
	dest := make(map[inventory.StockKey]*inventory.Record, len(keys))
	created := make(map[inventory.StockKey]bool, len(keys))

	for _, key := range keys {
		src, err := invRepo.GetForUpdate(ctx, from, key)
		if errors.Is(err, errs.ErrObjectNotFound) {
			// The source pool has never stocked this position: available is zero.
			return inventory.NewInsufficientStockError(from, key, demand[key], 0)
		}
		if err != nil {
			return err
		}
		source[key] = src

		dst, err := invRepo.GetForUpdate(ctx, to, key)
		if errors.Is(err, errs.ErrObjectNotFound) {
			dst, err = inventory.NewRecord(kernel.NewUUID(), to, key, 0)
			if err != nil {
				return err
			}
			created[key] = true
		} else if err != nil {
			return err
		}
		dest[key] = dst
	}

	if err := services.NewAllocator().Allocate(lines, source, dest); err != nil {
		return err
	}

	for _, record := range source {
		if err := invRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	for key, record := range dest {
		if created[key] {
			if err := invRepo.Add(ctx, record); err != nil {
				return err
			}
			continue
		}
		if err := invRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	return nil
}
