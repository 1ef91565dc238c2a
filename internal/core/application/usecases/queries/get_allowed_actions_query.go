package queries

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/guard"
)

var (
	ErrGetAllowedActionsQueryIsNotConstructed = errors.New(
		"GetAllowedActionsQuery must be created via NewGetAllowedActionsQuery constructor",
	)
)

// GetAllowedActionsQuery answers which order transitions a role may trigger
// from a given status. UIs render buttons from this answer instead of
// hard-coding the workflow, so the transition table stays the single authority.
type GetAllowedActionsQuery struct {
	status order.Status
	role   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetAllowedActionsQuery creates an allowed-actions query for the given
// status and role.
func NewGetAllowedActionsQuery(status order.Status, role kernel.Role) (GetAllowedActionsQuery, error) {
	if err := errors.Join(status.Validate(), role.Validate()); err != nil {
		return GetAllowedActionsQuery{}, err
	}

	return GetAllowedActionsQuery{
		status: status,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the current order status the actions start from.
func (q GetAllowedActionsQuery) Status() order.Status {
	return q.status
}

// Role returns the acting role.
func (q GetAllowedActionsQuery) Role() kernel.Role {
	return q.role
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllowedActionsQueryIsNotConstructed if validation fails.
func (q GetAllowedActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedActionsQueryIsNotConstructed)
}
