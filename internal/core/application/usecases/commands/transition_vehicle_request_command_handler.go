package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/core/domain/services"
)

// TransitionVehicleRequestCommandHandler drives the vehicle request workflow.
// Approval carries the same inventory side effect as order allocation: every
// requested position moves from the manufacturer pool into the requesting
// dealer's pool, all-or-nothing, in the same transaction as the status change.
// Rejection and cancellation touch no stock.
type TransitionVehicleRequestCommandHandler struct {
	uowFactory VehicleRequestInventoryUoWFactory
}

// NewTransitionVehicleRequestCommandHandler creates a handler for vehicle
// request transitions.
func NewTransitionVehicleRequestCommandHandler(
	uowFactory VehicleRequestInventoryUoWFactory,
) TransitionVehicleRequestCommandHandler {
	return TransitionVehicleRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle request transition command.
func (h TransitionVehicleRequestCommandHandler) Handle(ctx context.Context, cmd TransitionVehicleRequestCommand) error {
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

	request, err := uow.VehicleRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	from := request.Status()

	if err = request.Transition(cmd.Target(), cmd.Actor(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if from.RequiresAllocation(cmd.Target()) {
		if err = h.allocate(ctx, uow, request); err != nil {
			return err
		}
	}

	if err = uow.VehicleRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// allocate moves the requested positions from the manufacturer pool into the
// requesting dealer's pool.
func (h TransitionVehicleRequestCommandHandler) allocate(
	ctx context.Context,
	uow VehicleRequestInventoryUoW,
	request *vehiclerequest.VehicleRequest,
) error {
	dealer, err := inventory.DealerPool(request.DealerID())
	if err != nil {
		return err
	}

	items := request.Items()
	lines := make([]services.AllocationLine, 0, len(items))

	for _, item := range items {
		key, err := inventory.NewStockKey(item.Variant(), item.Color())
		if err != nil {
			return err
		}
		lines = append(lines, services.AllocationLine{Key: key, Qty: item.Quantity()})
	}

	return moveStock(ctx, uow.InventoryRepository(), lines, inventory.ManufacturerPool(), dealer)
}
