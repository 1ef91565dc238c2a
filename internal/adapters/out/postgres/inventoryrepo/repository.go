package inventoryrepo

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock record to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing stock record to the database. All columns are
// written: quantity and reserved legitimately reach zero and must not be
// skipped as zero values.
func (r *GormInventoryRepository) Update(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves the record for the given owner and stock key.
func (r *GormInventoryRepository) Get(
	ctx context.Context,
	owner inventory.Owner,
	key inventory.StockKey,
) (*inventory.Record, error) {
	return r.get(ctx, r.db, owner, key)
}

// GetForUpdate retrieves the record for the given owner and stock key holding
// a row-level write lock (SELECT ... FOR UPDATE). Concurrent allocations of the
// same position block here until the competing transaction finishes, which
// makes the surrounding unit of work the critical section.
func (r *GormInventoryRepository) GetForUpdate(
	ctx context.Context,
	owner inventory.Owner,
	key inventory.StockKey,
) (*inventory.Record, error) {
	locked := r.db.Clauses(clause.Locking{Strength: "UPDATE"})
	return r.get(ctx, locked, owner, key)
}

// GetAllByOwner retrieves every record held by the given owner, sorted by
// variant and color.
func (r *GormInventoryRepository) GetAllByOwner(
	ctx context.Context,
	owner inventory.Owner,
) ([]*inventory.Record, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Order("variant, color").
		Find(&dtos, "owner = ?", owner.String()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*inventory.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *GormInventoryRepository) get(
	ctx context.Context,
	db *gorm.DB,
	owner inventory.Owner,
	key inventory.StockKey,
) (*inventory.Record, error) {
	if err := errors.Join(owner.Validate(), key.Validate()); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := db.WithContext(ctx).
		First(&dto, "owner = ? AND variant = ? AND color = ?",
			owner.String(), key.Variant(), key.Color()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory record", owner.String()+" "+key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
