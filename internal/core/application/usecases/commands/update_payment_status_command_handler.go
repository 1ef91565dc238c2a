package commands

import (
	"context"
)

// UpdatePaymentStatusCommandHandler handles the dealer manager's decision on a
// pending payment. The payment state machine enforces that only the dealer
// manager may flip a payment and that the flip happens at most once.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentOrderUoWFactory
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment status updates.
func NewUpdatePaymentStatusCommandHandler(uowFactory PaymentOrderUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment status update command.
func (h UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
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

	instalment, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = instalment.Transition(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, instalment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
