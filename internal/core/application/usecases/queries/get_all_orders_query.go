package queries

import (
	"errors"

	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves order summaries, optionally narrowed to a single
// workflow status. Used by the order list screens on both the dealer and
// manufacturer side.
//
// Example:
//
//	query := NewGetAllOrdersQuery(nil) // every order
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for order summaries.
// Pass nil to retrieve orders in every status.
func NewGetAllOrdersQuery(status *order.Status) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Status returns the status filter, or nil when no filter applies.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	if err := q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed); err != nil {
		return err
	}

	if q.status != nil {
		return q.status.Validate()
	}
	return nil
}
