package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"
)

var (
	// ErrOrderNotReadyForDelivery is returned when a delivery is requested for
	// an order that has no allocated stock yet, or is already closed.
	ErrOrderNotReadyForDelivery = errors.New("order is not ready for delivery")

	// ErrDeliveryAlreadyExists is returned when the order already has a delivery.
	ErrDeliveryAlreadyExists = errors.New("order already has a delivery")
)

// CreateDeliveryCommandHandler handles the business logic for scheduling a
// delivery. A delivery can only be created once stock has been allocated to
// the order, and each order has at most one delivery.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryOrderUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Verifies the order exists and is allocated or later, that no delivery exists
// for it yet, then persists the new delivery in Pending status. An order
// already closed via the direct delivered edge can still get its record
// backfilled this way.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch aggregate.Status() {
	case order.Allocated, order.Invoiced, order.Delivered:
	default:
		return ErrOrderNotReadyForDelivery
	}

	_, err = uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return ErrDeliveryAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	handover, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.OrderID(),
		cmd.Address(),
		cmd.ScheduledAt(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, handover); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
