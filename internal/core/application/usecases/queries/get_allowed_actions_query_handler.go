package queries

import (
	"context"

	"dealership/internal/core/domain/model/order"
)

// GetAllowedActionsQueryHandler consults the order transition table.
// This query needs no storage: the table lives in the domain model.
type GetAllowedActionsQueryHandler struct{}

// NewGetAllowedActionsQueryHandler creates a handler for allowed-action queries.
func NewGetAllowedActionsQueryHandler() GetAllowedActionsQueryHandler {
	return GetAllowedActionsQueryHandler{}
}

// Handle returns the statuses the role may move an order to from the query's
// status. The slice is empty for terminal statuses and for roles with no edge.
func (h GetAllowedActionsQueryHandler) Handle(
	_ context.Context,
	query GetAllowedActionsQuery,
) ([]order.Status, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return query.Status().AllowedTransitions(query.Role()), nil
}
