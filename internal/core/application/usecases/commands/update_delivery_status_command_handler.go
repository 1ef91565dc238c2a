package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler handles delivery progress updates.
// When a delivery reaches Delivered and the order is invoiced, the handler
// also advances the order to delivered in the same transaction, recording the
// same actor in the order's audit log.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryOrderUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status update command.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	handover, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = handover.Transition(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, handover); err != nil {
		return err
	}

	if cmd.Target() == delivery.Delivered {
		if err = h.completeOrder(ctx, uow, handover, cmd.Actor()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// completeOrder advances the delivered order's own workflow. The order must be
// invoiced for the edge to exist; an order still in allocated status keeps its
// status and the caller sees the transition error. An order already delivered
// is left alone, which is what finishing a backfilled delivery record looks
// like.
func (h UpdateDeliveryStatusCommandHandler) completeOrder(
	ctx context.Context,
	uow DeliveryOrderUoW,
	handover *delivery.Delivery,
	actor kernel.Actor,
) error {
	aggregate, err := uow.OrderRepository().Get(ctx, handover.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		return nil
	}

	if err = aggregate.Transition(order.Delivered, actor, "delivery completed", time.Now().UTC()); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, aggregate)
}
