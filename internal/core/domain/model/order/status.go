package order

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
	// It indicates that the requested (from, to) pair is not an edge of the
	// fulfillment state machine.
	ErrInvalidTransition = errors.New("order status transition is not allowed")

	// ErrForbidden is the unwrap target for ForbiddenError.
	// It indicates that the edge exists but the acting role may not trigger it.
	ErrForbidden = errors.New("actor is not allowed to perform this transition")
)

// InvalidTransitionError reports a status change request that is not an edge of
// the transition table. From carries the current status so callers can explain
// why the action is unavailable.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError reports a legal transition requested by the wrong role.
type ForbiddenError struct {
	Role kernel.Role
	From Status
	To   Status
}

// NewForbiddenError creates a ForbiddenError for the given role and edge.
func NewForbiddenError(role kernel.Role, from, to Status) *ForbiddenError {
	return &ForbiddenError{Role: role, From: from, To: to}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s cannot move order from %s to %s", ErrForbidden, e.Role, e.From, e.To)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders follow
// the fulfillment workflow.
//
// State transitions:
//
//	New ──> Confirmed ──> Allocated ──> Invoiced ──> Delivered
//	 │          │             │
//	 │          └──> Rejected ├──> Invoiced
//	 ├──> Rejected            └──> Cancelled
//	 └──> Cancelled
//
// Status is a value object that validates state transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created by sales staff.
	// Orders in this status await dealer manager review.
	New

	// Confirmed indicates the dealer manager approved the order.
	// Orders in this status await manufacturer allocation.
	Confirmed

	// Allocated indicates manufacturer stock has been committed to the order
	// and transferred into the dealer pool.
	Allocated

	// Invoiced indicates the dealer issued the invoice for an allocated order.
	Invoiced

	// Delivered indicates the vehicles reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was withdrawn by the dealer side,
	// either before confirmation or after allocation. Final state.
	Cancelled

	// Rejected indicates the order was declined, by the dealer manager before
	// confirmation or by manufacturer staff before allocation. Final state.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Confirmed: "confirmed",
		Allocated: "allocated",
		Invoiced:  "invoiced",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Rejected:  "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Confirmed: "confirmed",
		Allocated: "allocated",
		Invoiced:  "invoiced",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Rejected:  "rejected",
	}
}

type edge struct {
	from Status
	to   Status
}

// getTransitionRoles is the single authoritative transition table for the order
// workflow: every legal edge mapped to the one role allowed to trigger it.
// Both transition validation and the allowed-actions projection consult this
// table, so permission logic is never duplicated elsewhere.
func getTransitionRoles() map[edge]kernel.Role {
	return map[edge]kernel.Role{
		{New, Confirmed}:       kernel.DealerManager,
		{New, Cancelled}:       kernel.DealerManager,
		{New, Rejected}:        kernel.DealerManager,
		{Confirmed, Allocated}: kernel.ManufacturerStaff,
		{Confirmed, Rejected}:  kernel.ManufacturerStaff,
		{Allocated, Invoiced}:  kernel.DealerStaff,
		{Allocated, Cancelled}: kernel.DealerStaff,
		{Invoiced, Delivered}:  kernel.DealerStaff,
	}
}

// StatusFromString parses a status from its wire representation.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// CanTransitionTo reports whether (s, to) is a legal edge, regardless of role.
func (s Status) CanTransitionTo(to Status) bool {
	_, ok := getTransitionRoles()[edge{s, to}]
	return ok
}

// RequiredRole returns the role allowed to move an order from s to the target
// status. Returns InvalidTransitionError if the edge does not exist.
func (s Status) RequiredRole(to Status) (kernel.Role, error) {
	role, ok := getTransitionRoles()[edge{s, to}]
	if !ok {
		return kernel.RoleUnknown, NewInvalidTransitionError(s, to)
	}
	return role, nil
}

// TransitionTo validates the requested edge against the transition table and
// the acting role, returning the new status on success.
//
// Returns:
//   - (to, nil) if the edge is legal and the role matches
//   - (0, *InvalidTransitionError) if the edge is not in the table
//   - (0, *ForbiddenError) if the edge exists but the role may not trigger it
func (s Status) TransitionTo(to Status, role kernel.Role) (Status, error) {
	required, err := s.RequiredRole(to)
	if err != nil {
		return 0, err
	}

	if role != required {
		return 0, NewForbiddenError(role, s, to)
	}

	return to, nil
}

// AllowedTransitions returns the target statuses the given role may reach from
// s, in no particular order. UIs render action buttons from this projection
// instead of re-deriving permissions.
func (s Status) AllowedTransitions(role kernel.Role) []Status {
	var targets []Status
	for e, r := range getTransitionRoles() {
		if e.from == s && r == role {
			targets = append(targets, e.to)
		}
	}
	return targets
}

// RequiresAllocation reports whether the edge (s, to) carries the inventory
// allocation side effect (reserve manufacturer stock and transfer it to the
// dealer pool).
func (s Status) RequiresAllocation(to Status) bool {
	return s == Confirmed && to == Allocated
}

// RequiresDeallocation reports whether the edge (s, to) carries the inventory
// release side effect (stock moves back from the dealer pool to the
// manufacturer pool). Only dealer-side cancellation after allocation moves
// inventory; every rejection path happens before stock is committed.
func (s Status) RequiresDeallocation(to Status) bool {
	return s == Allocated && to == Cancelled
}
