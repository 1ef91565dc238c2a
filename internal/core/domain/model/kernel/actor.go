package kernel

import (
	"errors"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies who is issuing a workflow command: a validated role plus a
// display name recorded in audit logs. Authentication happens outside the core;
// the actor carries only what transition tables and audit trails need.
type Actor struct {
	role Role
	name string

	guard guard.ConstructorGuard
}

// NewActor creates an actor with a valid role and non-empty name.
func NewActor(role Role, name string) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setRole(role), actor.setName(name)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Role returns the actor's workflow role.
func (a Actor) Role() Role {
	return a.role
}

// Name returns the actor's display name as recorded in audit entries.
func (a Actor) Name() string {
	return a.name
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	a.name = name
	return nil
}
