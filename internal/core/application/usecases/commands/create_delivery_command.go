package commands

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to schedule the handover of an
// order's vehicles.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	orderID     kernel.UUID
	address     string
	scheduledAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to schedule a delivery.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	address string,
	scheduledAt time.Time,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setAddress(address),
		cmd.setScheduledAt(scheduledAt),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order being delivered.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the delivery address.
func (c CreateDeliveryCommand) Address() string {
	return c.address
}

// ScheduledAt returns when the handover is scheduled.
func (c CreateDeliveryCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}

	c.address = address
	return nil
}

func (c *CreateDeliveryCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt is required")
	}

	c.scheduledAt = scheduledAt
	return nil
}
