package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a request to flip a pending payment to
// confirmed or failed on behalf of an actor.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	target    payment.Status
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to update a payment's status.
func NewUpdatePaymentStatusCommand(
	paymentID kernel.UUID,
	target payment.Status,
	actor kernel.Actor,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to update.
func (c UpdatePaymentStatusCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Target returns the requested target status.
func (c UpdatePaymentStatusCommand) Target() payment.Status {
	return c.target
}

// Actor returns who is requesting the update.
func (c UpdatePaymentStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdatePaymentStatusCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *UpdatePaymentStatusCommand) setTarget(target payment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdatePaymentStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
