package delivery

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery represents the scheduled handover of an order's vehicles.
// It is bound to exactly one order and progresses through Pending, InProgress,
// and Delivered, driven by dealer staff.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID

	address     string
	scheduledAt time.Time

	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in Pending status for the given order.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	address string,
	scheduledAt time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddress(address),
		d.setScheduledAt(scheduledAt),
		d.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	address string,
	scheduledAt time.Time,
	status Status,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddress(address),
		d.setScheduledAt(scheduledAt),
		d.setStatus(status),
		d.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Address returns the delivery address.
func (d *Delivery) Address() string {
	return d.address
}

// ScheduledAt returns when the handover is scheduled.
func (d *Delivery) ScheduledAt() time.Time {
	return d.scheduledAt
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Transition moves the delivery to the target status on behalf of the given
// actor. Only dealer staff may move a delivery forward. On failure the
// delivery is left unchanged.
func (d *Delivery) Transition(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.TransitionTo(target, actor.Role())
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}
	d.address = address
	return nil
}

func (d *Delivery) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt is required")
	}
	d.scheduledAt = scheduledAt
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	d.createdAt = createdAt
	return nil
}
