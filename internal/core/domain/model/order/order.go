package order

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a dealership sale in the system. It is the aggregate root
// that manages the order lifecycle from creation through confirmation,
// allocation, invoicing, and delivery.
//
// Order follows these invariants:
//   - Must have valid unique, customer, and dealer identifiers
//   - Must have at least one valid line item
//   - Status changes only through Transition, along edges of the transition table
//   - Every applied transition appends an entry to the append-only audit log
//   - Orders are never deleted; cancellation and rejection are terminal statuses
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	dealerID   kernel.UUID

	items         []Item
	total         int64
	paymentMethod kernel.PaymentMethod

	status    Status
	createdAt time.Time
	audit     []kernel.AuditEntry

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in New status with validation. This is the only
// way to create a valid Order apart from RestoreOrder, ensuring all business
// invariants are maintained.
//
// The order total is computed from the line items at construction time and is
// immutable afterwards.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	dealerID kernel.UUID,
	items []Item,
	paymentMethod kernel.PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: New,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDealerID(dealerID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// current status and audit log. The restored order behaves identically to one
// created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	dealerID kernel.UUID,
	items []Item,
	paymentMethod kernel.PaymentMethod,
	status Status,
	createdAt time.Time,
	audit []kernel.AuditEntry,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDealerID(dealerID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
		o.setAudit(audit),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Called when reconstructing orders
// from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the purchasing customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DealerID returns the identifier of the selling dealer. The dealer is the
// destination pool for inventory allocated to this order.
func (o *Order) DealerID() kernel.UUID {
	return o.dealerID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total in the smallest currency unit, computed from
// the line items at construction.
func (o *Order) Total() int64 {
	return o.total
}

// PaymentMethod returns how the customer intends to settle the order.
func (o *Order) PaymentMethod() kernel.PaymentMethod {
	return o.paymentMethod
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Audit returns a copy of the append-only audit log, oldest entry first.
func (o *Order) Audit() []kernel.AuditEntry {
	audit := make([]kernel.AuditEntry, len(o.audit))
	copy(audit, o.audit)
	return audit
}

// Transition moves the order to the target status on behalf of the given actor
// and appends an audit entry recording the change.
//
// The transition table is the only authority consulted: the (current, target)
// pair must be a legal edge and the actor's role must match the edge's required
// role. On failure the order is left unchanged.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the edge is not in the table
//   - *ForbiddenError if the actor's role may not trigger the edge
//
// Inventory side effects of the transition are the caller's responsibility and
// must be applied atomically with persisting the status change.
func (o *Order) Transition(target Status, actor kernel.Actor, note string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target, actor.Role())
	if err != nil {
		return err
	}

	entry, err := kernel.NewAuditEntry(newStatus.String(), actor, at, note)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.audit = append(o.audit, entry)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDealerID(dealerID kernel.UUID) error {
	if err := dealerID.Validate(); err != nil {
		return err
	}
	o.dealerID = dealerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items are required")
	}

	var total int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod kernel.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setAudit(audit []kernel.AuditEntry) error {
	for _, entry := range audit {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	o.audit = make([]kernel.AuditEntry, len(audit))
	copy(o.audit, audit)
	return nil
}
