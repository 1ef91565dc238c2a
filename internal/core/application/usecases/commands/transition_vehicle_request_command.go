package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/pkg/guard"
)

var ErrTransitionVehicleRequestCommandIsNotConstructed = errors.New(
	"TransitionVehicleRequestCommand must be created via NewTransitionVehicleRequestCommand constructor",
)

// TransitionVehicleRequestCommand represents a request to move a vehicle
// request to a target status on behalf of an actor.
type TransitionVehicleRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	target    vehiclerequest.Status
	actor     kernel.Actor
	note      string

	guard guard.ConstructorGuard
}

// NewTransitionVehicleRequestCommand creates a command to transition a vehicle
// request. The note may be empty; it is recorded in the request's audit log.
func NewTransitionVehicleRequestCommand(
	requestID kernel.UUID,
	target vehiclerequest.Status,
	actor kernel.Actor,
	note string,
) (TransitionVehicleRequestCommand, error) {
	cmd := TransitionVehicleRequestCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionVehicleRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionVehicleRequestCommand) Validate() error {
	return c.guard.Validate(ErrTransitionVehicleRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to transition.
func (c TransitionVehicleRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Target returns the requested target status.
func (c TransitionVehicleRequestCommand) Target() vehiclerequest.Status {
	return c.target
}

// Actor returns who is requesting the transition.
func (c TransitionVehicleRequestCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the optional free-form note for the audit log.
func (c TransitionVehicleRequestCommand) Note() string {
	return c.note
}

func (c *TransitionVehicleRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *TransitionVehicleRequestCommand) setTarget(target vehiclerequest.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionVehicleRequestCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
