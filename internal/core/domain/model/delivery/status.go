package delivery

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("delivery status transition is not allowed")

	// ErrForbidden is the unwrap target for ForbiddenError.
	ErrForbidden = errors.New("actor is not allowed to update the delivery")
)

// InvalidTransitionError reports a delivery status change that is not an edge
// of the delivery state machine.
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

// ForbiddenError reports a legal delivery transition requested by the wrong role.
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
	return fmt.Sprintf("%s: %s cannot move delivery from %s to %s", ErrForbidden, e.Role, e.From, e.To)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered
//
// Only dealer staff move deliveries forward; Delivered is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when the delivery is scheduled.
	Pending

	// InProgress indicates the vehicles are on their way to the customer.
	InProgress

	// Delivered indicates the handover is complete. Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
	}
}

type edge struct {
	from Status
	to   Status
}

func getTransitionRoles() map[edge]kernel.Role {
	return map[edge]kernel.Role{
		{Pending, InProgress}:   kernel.DealerStaff,
		{InProgress, Delivered}: kernel.DealerStaff,
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo validates the requested edge against the delivery state machine
// and the acting role, returning the new status on success.
func (s Status) TransitionTo(to Status, role kernel.Role) (Status, error) {
	required, ok := getTransitionRoles()[edge{s, to}]
	if !ok {
		return 0, NewInvalidTransitionError(s, to)
	}

	if role != required {
		return 0, NewForbiddenError(role, s, to)
	}

	return to, nil
}
