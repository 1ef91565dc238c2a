package requestrepo

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRequestRepository implements VehicleRequestRepository using GORM.
type GormVehicleRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRequestRepository creates a new GORM vehicle request repository.
func NewGormVehicleRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRequestRepository {
	return &GormVehicleRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle request to the database.
func (r *GormVehicleRequestRepository) Add(ctx context.Context, aggregate *vehiclerequest.VehicleRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle request to the database.
func (r *GormVehicleRequestRepository) Update(ctx context.Context, aggregate *vehiclerequest.VehicleRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle request by ID.
func (r *GormVehicleRequestRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*vehiclerequest.VehicleRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
