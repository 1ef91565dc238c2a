package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrCreateVehicleRequestCommandIsNotConstructed = errors.New(
	"CreateVehicleRequestCommand must be created via NewCreateVehicleRequestCommand constructor",
)

// CreateVehicleRequestCommand represents a dealer's request for manufacturer
// stock outside any customer order.
type CreateVehicleRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	dealerID  kernel.UUID
	items     []vehiclerequest.Item

	guard guard.ConstructorGuard
}

// NewCreateVehicleRequestCommand creates a command to raise a vehicle request.
func NewCreateVehicleRequestCommand(
	requestID kernel.UUID,
	dealerID kernel.UUID,
	items []vehiclerequest.Item,
) (CreateVehicleRequestCommand, error) {
	cmd := CreateVehicleRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setDealerID(dealerID),
		cmd.setItems(items),
	); err != nil {
		return CreateVehicleRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the request.
func (c CreateVehicleRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// DealerID returns the identifier of the requesting dealer.
func (c CreateVehicleRequestCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// Items returns the requested lines.
func (c CreateVehicleRequestCommand) Items() []vehiclerequest.Item {
	return c.items
}

func (c *CreateVehicleRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateVehicleRequestCommand) setDealerID(dealerID kernel.UUID) error {
	if err := dealerID.Validate(); err != nil {
		return err
	}

	c.dealerID = dealerID
	return nil
}

func (c *CreateVehicleRequestCommand) setItems(items []vehiclerequest.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items are required")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
