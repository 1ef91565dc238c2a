package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/vehiclerequest"
)

// CreateVehicleRequestCommandHandler handles the business logic for raising a
// vehicle request. Requests start pending, awaiting a manufacturer decision.
type CreateVehicleRequestCommandHandler struct {
	uowFactory VehicleRequestUoWFactory
}

// NewCreateVehicleRequestCommandHandler creates a handler for vehicle request creation.
func NewCreateVehicleRequestCommandHandler(uowFactory VehicleRequestUoWFactory) CreateVehicleRequestCommandHandler {
	return CreateVehicleRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle request creation command.
func (h CreateVehicleRequestCommandHandler) Handle(ctx context.Context, cmd CreateVehicleRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	request, err := vehiclerequest.NewVehicleRequest(
		cmd.RequestID(),
		cmd.DealerID(),
		cmd.Items(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
