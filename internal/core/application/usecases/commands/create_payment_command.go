package commands

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents a request to record an instalment against an
// order. The payment starts pending; the dealer manager confirms or fails it
// later.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	kind      payment.Kind
	method    kernel.PaymentMethod
	amount    int64

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a payment.
// The amount is in the smallest currency unit and must be positive.
func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	kind payment.Kind,
	method kernel.PaymentMethod,
	amount int64,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setMethod(method),
		cmd.setAmount(amount),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being settled.
func (c CreatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns what part of the order total this payment settles.
func (c CreatePaymentCommand) Kind() payment.Kind {
	return c.kind
}

// Method returns how the payment is made.
func (c CreatePaymentCommand) Method() kernel.PaymentMethod {
	return c.method
}

// Amount returns the payment amount in the smallest currency unit.
func (c CreatePaymentCommand) Amount() int64 {
	return c.amount
}

func (c *CreatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentCommand) setKind(kind payment.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreatePaymentCommand) setMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *CreatePaymentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}

	c.amount = amount
	return nil
}
