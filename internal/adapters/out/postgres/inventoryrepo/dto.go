// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory record persistence. One row per (owner, variant, color) stock
// position; the unique index enforces the one-row-per-position invariant at
// the database level.
package inventoryrepo

import (
	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting stock records.
// The owner is stored in its wire form ("manufacturer" or "dealer:<uuid>").
type RecordDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner    string    `gorm:"index:idx_stock_position,unique"`
	Variant  string    `gorm:"index:idx_stock_position,unique"`
	Color    string    `gorm:"index:idx_stock_position,unique"`
	Quantity int
	Reserved int
}

// TableName specifies the database table name for stock records.
func (RecordDTO) TableName() string {
	return "inventory_records"
}

// fromDomain converts a stock record aggregate to its database representation.
func fromDomain(record *inventory.Record) RecordDTO {
	return RecordDTO{
		ID:       record.ID().Bytes(),
		Owner:    record.Owner().String(),
		Variant:  record.Key().Variant(),
		Color:    record.Key().Color(),
		Quantity: record.Quantity(),
		Reserved: record.Reserved(),
	}
}

// toDomain converts a database DTO back into a stock record aggregate.
func toDomain(dto RecordDTO) (*inventory.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owner, err := inventory.OwnerFromString(dto.Owner)
	if err != nil {
		return nil, err
	}

	key, err := inventory.NewStockKey(dto.Variant, dto.Color)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(id, owner, key, dto.Quantity, dto.Reserved)
}
