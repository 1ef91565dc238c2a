package kernel

import (
	"errors"
	"time"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrAuditEntryIsNotConstructed is returned when an AuditEntry instance was not
// created through the NewAuditEntry factory method.
var ErrAuditEntryIsNotConstructed = errors.New("AuditEntry must be created via NewAuditEntry constructor")

// AuditEntry records one applied transition: the action taken, who took it,
// when, and an optional free-form note. Audit logs are append-only; entries are
// never modified or removed.
type AuditEntry struct {
	action string
	actor  Actor
	at     time.Time
	note   string

	guard guard.ConstructorGuard
}

// NewAuditEntry creates an audit entry for an applied action.
// The note may be empty; action, actor, and timestamp are required.
func NewAuditEntry(action string, actor Actor, at time.Time, note string) (AuditEntry, error) {
	entry := AuditEntry{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setAction(action),
		entry.setActor(actor),
		entry.setAt(at),
	); err != nil {
		return AuditEntry{}, err
	}

	return entry, nil
}

// Validate ensures the AuditEntry was created through the constructor.
func (e AuditEntry) Validate() error {
	return e.guard.Validate(ErrAuditEntryIsNotConstructed)
}

// Action returns the recorded action, the wire name of the status the entity
// was moved to.
func (e AuditEntry) Action() string {
	return e.action
}

// Actor returns who performed the action.
func (e AuditEntry) Actor() Actor {
	return e.actor
}

// At returns when the action was performed.
func (e AuditEntry) At() time.Time {
	return e.at
}

// Note returns the optional free-form note supplied with the action.
func (e AuditEntry) Note() string {
	return e.note
}

func (e *AuditEntry) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action is required")
	}
	e.action = action
	return nil
}

func (e *AuditEntry) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	e.actor = actor
	return nil
}

func (e *AuditEntry) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at is required")
	}
	e.at = at
	return nil
}
