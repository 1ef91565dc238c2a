package vehiclerequest

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrVehicleRequestIsNotConstructed is returned when a VehicleRequest instance
// was not created through the NewVehicleRequest or RestoreVehicleRequest
// factory methods.
var ErrVehicleRequestIsNotConstructed = errors.New("VehicleRequest must be created via NewVehicleRequest constructor")

// VehicleRequest represents a dealer's ask for manufacturer stock. Like orders,
// requests carry an append-only audit log of every applied transition and are
// never hard-deleted.
type VehicleRequest struct {
	id       kernel.UUID
	dealerID kernel.UUID

	items []Item

	status    Status
	createdAt time.Time
	audit     []kernel.AuditEntry

	guard guard.ConstructorGuard
}

// NewVehicleRequest creates a request in Pending status for the given dealer.
func NewVehicleRequest(
	id kernel.UUID,
	dealerID kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*VehicleRequest, error) {
	r := &VehicleRequest{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDealerID(dealerID),
		r.setItems(items),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreVehicleRequest reconstructs a VehicleRequest from persistent storage,
// including its current status and audit log.
func RestoreVehicleRequest(
	id kernel.UUID,
	dealerID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
	audit []kernel.AuditEntry,
) (*VehicleRequest, error) {
	r := &VehicleRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDealerID(dealerID),
		r.setItems(items),
		r.setStatus(status),
		r.setCreatedAt(createdAt),
		r.setAudit(audit),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the VehicleRequest instance was properly constructed.
func (r *VehicleRequest) Validate() error {
	if r == nil {
		return ErrVehicleRequestIsNotConstructed
	}
	return r.guard.Validate(ErrVehicleRequestIsNotConstructed)
}

// IsEqual compares two requests by their unique identifiers.
func (r *VehicleRequest) IsEqual(other *VehicleRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *VehicleRequest) ID() kernel.UUID {
	return r.id
}

// DealerID returns the identifier of the requesting dealer. The dealer is the
// destination pool for stock allocated to this request.
func (r *VehicleRequest) DealerID() kernel.UUID {
	return r.dealerID
}

// Items returns a copy of the requested lines.
func (r *VehicleRequest) Items() []Item {
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

// Status returns the current status of the request.
func (r *VehicleRequest) Status() Status {
	return r.status
}

// CreatedAt returns when the request was raised.
func (r *VehicleRequest) CreatedAt() time.Time {
	return r.createdAt
}

// Audit returns a copy of the append-only audit log, oldest entry first.
func (r *VehicleRequest) Audit() []kernel.AuditEntry {
	audit := make([]kernel.AuditEntry, len(r.audit))
	copy(audit, r.audit)
	return audit
}

// Transition moves the request to the target status on behalf of the given
// actor and appends an audit entry recording the change. On failure the
// request is left unchanged.
//
// Inventory side effects of approval are the caller's responsibility and must
// be applied atomically with persisting the status change.
func (r *VehicleRequest) Transition(target Status, actor kernel.Actor, note string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.TransitionTo(target, actor.Role())
	if err != nil {
		return err
	}

	entry, err := kernel.NewAuditEntry(newStatus.String(), actor, at, note)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.audit = append(r.audit, entry)
	return nil
}

func (r *VehicleRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *VehicleRequest) setDealerID(dealerID kernel.UUID) error {
	if err := dealerID.Validate(); err != nil {
		return err
	}
	r.dealerID = dealerID
	return nil
}

func (r *VehicleRequest) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items are required")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	r.items = make([]Item, len(items))
	copy(r.items, items)
	return nil
}

func (r *VehicleRequest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *VehicleRequest) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	r.createdAt = createdAt
	return nil
}

func (r *VehicleRequest) setAudit(audit []kernel.AuditEntry) error {
	for _, entry := range audit {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	r.audit = make([]kernel.AuditEntry, len(audit))
	copy(r.audit, audit)
	return nil
}
