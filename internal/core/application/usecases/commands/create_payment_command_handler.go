package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler handles the business logic for recording a
// payment. The order must exist; beyond that any number of payments may be
// recorded against it, and only confirmed ones count toward settlement.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentOrderUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for payment creation.
func NewCreatePaymentCommandHandler(uowFactory PaymentOrderUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment creation command.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	instalment, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.OrderID(),
		cmd.Kind(),
		cmd.Method(),
		cmd.Amount(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, instalment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
