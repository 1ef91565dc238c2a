package ports

import (
	"context"

	"dealership/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for inventory records.
// Records are keyed by (owner, variant, color); each key has at most one row.
type InventoryRepository interface {
	// Add persists a new inventory record.
	Add(ctx context.Context, record *inventory.Record) error

	// Update persists changes to an existing inventory record.
	Update(ctx context.Context, record *inventory.Record) error

	// Get retrieves the record for the given owner and stock key.
	// Returns errs.ObjectNotFoundError when the owner holds no such stock.
	Get(ctx context.Context, owner inventory.Owner, key inventory.StockKey) (*inventory.Record, error)

	// GetForUpdate retrieves the record for the given owner and stock key with
	// a row-level write lock, so concurrent allocations against the same key
	// serialize on the surrounding transaction.
	GetForUpdate(ctx context.Context, owner inventory.Owner, key inventory.StockKey) (*inventory.Record, error)

	// GetAllByOwner retrieves every record held by the given owner.
	GetAllByOwner(ctx context.Context, owner inventory.Owner) ([]*inventory.Record, error)
}
