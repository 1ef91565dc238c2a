package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/errs"
)

// TransitionOrderCommandHandler drives the order workflow. It applies the
// requested transition to the aggregate and runs the edge's side effect in the
// same transaction:
//
//   - confirmed -> allocated moves every ordered position from the
//     manufacturer pool into the dealer pool, all-or-nothing
//   - allocated -> cancelled moves the same positions back
//   - invoiced -> delivered closes out the order's delivery record, so the
//     two state machines cannot diverge on the direct path
//
// A failed transition, for any reason, leaves no persistent changes behind.
type TransitionOrderCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
// Requires an OrderInventoryUoWFactory so status changes and stock movements
// commit together.
func NewTransitionOrderCommandHandler(uowFactory OrderInventoryUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Loads the order, validates the edge and the actor's role against the
// transition table, applies any inventory side effect, and persists the new
// status plus its audit entry in one transaction.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	from := aggregate.Status()

	if err = aggregate.Transition(cmd.Target(), cmd.Actor(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	switch {
	case from.RequiresAllocation(cmd.Target()):
		err = h.moveOrderStock(ctx, uow, aggregate, inventory.ManufacturerPool(), true)
	case from.RequiresDeallocation(cmd.Target()):
		err = h.moveOrderStock(ctx, uow, aggregate, inventory.ManufacturerPool(), false)
	case cmd.Target() == order.Delivered:
		err = h.completeDelivery(ctx, uow, aggregate.ID(), cmd.Actor())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// moveOrderStock moves the order's positions between the manufacturer pool and
// the order's dealer pool. toDealer selects the direction: allocation moves
// stock to the dealer, cancellation moves it back.
func (h TransitionOrderCommandHandler) moveOrderStock(
	ctx context.Context,
	uow OrderInventoryUoW,
	aggregate *order.Order,
	pool inventory.Owner,
	toDealer bool,
) error {
	dealer, err := inventory.DealerPool(aggregate.DealerID())
	if err != nil {
		return err
	}

	lines, err := orderAllocationLines(aggregate)
	if err != nil {
		return err
	}

	from, to := pool, dealer
	if !toDealer {
		from, to = dealer, pool
	}

	return moveStock(ctx, uow.InventoryRepository(), lines, from, to)
}

// completeDelivery advances the order's delivery record to delivered when the
// order takes the direct invoiced -> delivered edge. An order without a
// delivery record passes through untouched, and a record already delivered is
// left alone; an in-flight record is stepped to delivered so it cannot stay
// stranded behind a closed order.
func (h TransitionOrderCommandHandler) completeDelivery(
	ctx context.Context,
	uow OrderInventoryUoW,
	orderID kernel.UUID,
	actor kernel.Actor,
) error {
	handover, err := uow.DeliveryRepository().GetByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if handover.Status() == delivery.Delivered {
		return nil
	}

	if handover.Status() == delivery.Pending {
		if err = handover.Transition(delivery.InProgress, actor); err != nil {
			return err
		}
	}

	if err = handover.Transition(delivery.Delivered, actor); err != nil {
		return err
	}

	return uow.DeliveryRepository().Update(ctx, handover)
}

// orderAllocationLines projects the order's items onto allocation demand lines.
func orderAllocationLines(aggregate *order.Order) ([]services.AllocationLine, error) {
	items := aggregate.Items()
	lines := make([]services.AllocationLine, 0, len(items))

	for _, item := range items {
		key, err := inventory.NewStockKey(item.Variant(), item.Color())
		if err != nil {
			return nil, err
		}
		lines = append(lines, services.AllocationLine{Key: key, Qty: item.Quantity()})
	}

	return lines, nil
}
