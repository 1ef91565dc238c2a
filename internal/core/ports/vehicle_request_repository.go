package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"
)

// VehicleRequestRepository defines the persistence contract for vehicle
// request aggregates.
type VehicleRequestRepository interface {
	// Add persists a new vehicle request aggregate to storage.
	Add(ctx context.Context, aggregate *vehiclerequest.VehicleRequest) error

	// Update persists changes to an existing vehicle request aggregate,
	// including its status and audit log.
	Update(ctx context.Context, aggregate *vehiclerequest.VehicleRequest) error

	// Get retrieves a vehicle request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehiclerequest.VehicleRequest, error)
}
