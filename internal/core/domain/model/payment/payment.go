package payment

import (
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory methods.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment represents one instalment against an order. An order may carry any
// number of payments; only confirmed ones reduce the outstanding debt.
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID

	kind   Kind
	method kernel.PaymentMethod
	amount int64

	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a payment in Pending status against the given order.
// The amount is in the smallest currency unit and must be positive.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	method kernel.PaymentMethod,
	amount int64,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setKind(kind),
		p.setMethod(method),
		p.setAmount(amount),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistent storage.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	method kernel.PaymentMethod,
	amount int64,
	status Status,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setKind(kind),
		p.setMethod(method),
		p.setAmount(amount),
		p.setStatus(status),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order being settled.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Kind returns what part of the order total this payment settles.
func (p *Payment) Kind() Kind {
	return p.kind
}

// Method returns how the payment is made.
func (p *Payment) Method() kernel.PaymentMethod {
	return p.method
}

// Amount returns the payment amount in the smallest currency unit.
func (p *Payment) Amount() int64 {
	return p.amount
}

// Status returns the current status of the payment.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns when the payment was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// IsConfirmed reports whether this payment counts toward the settled amount.
func (p *Payment) IsConfirmed() bool {
	return p.status == Confirmed
}

// Transition flips the payment to the target status on behalf of the given
// actor. Only the dealer manager may flip a pending payment, and only once.
// On failure the payment is left unchanged.
func (p *Payment) Transition(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.TransitionTo(target, actor.Role())
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Payment) setMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}
	p.amount = amount
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Payment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	p.createdAt = createdAt
	return nil
}
