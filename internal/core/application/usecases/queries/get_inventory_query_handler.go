package queries

import (
	"context"

	"dealership/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

// GetInventoryQueryHandler retrieves stock positions from the database.
// Reads the same ledger the allocation engine writes, without locking.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for inventory queries.
// Requires a GORM database connection for query execution.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the query and returns matching stock positions sorted by
// owner, then variant and color.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			owner,
			variant,
			color,
			quantity,
			reserved
		FROM inventory_records
		WHERE 1 = 1
	`
	args := make([]any, 0, 3)

	if query.Variant() != "" {
		sql += " AND variant = ?"
		args = append(args, query.Variant())
	}
	if query.Color() != "" {
		sql += " AND color = ?"
		args = append(args, query.Color())
	}
	if query.Owner() != nil {
		sql += " AND owner = ?"
		args = append(args, query.Owner().String())
	}
	sql += " ORDER BY owner, variant, color"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]GetInventoryQueryResponse, 0)

	for rows.Next() {
		var position GetInventoryQueryResponse
		var owner string

		err = rows.Scan(
			&owner,
			&position.Variant,
			&position.Color,
			&position.Quantity,
			&position.Reserved,
		)
		if err != nil {
			return nil, err
		}

		if position.Owner, err = inventory.OwnerFromString(owner); err != nil {
			return nil, err
		}
		position.Available = position.Quantity - position.Reserved

		positions = append(positions, position)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
