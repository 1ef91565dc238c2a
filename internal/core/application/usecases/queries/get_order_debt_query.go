package queries

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var (
	ErrGetOrderDebtQueryIsNotConstructed = errors.New(
		"GetOrderDebtQuery must be created via NewGetOrderDebtQuery constructor",
	)
)

// GetOrderDebtQuery computes the outstanding balance of an order: the order
// total minus the sum of confirmed payments. Pending and failed payments do not
// reduce the debt.
//
// Example:
//
//	query, err := NewGetOrderDebtQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderDebtQueryHandler(db)
//
//	debt, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute debt: %w", err)
//	}
//
//	fmt.Printf("Order %s owes %d\n", debt.OrderID, debt.Debt)
type GetOrderDebtQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDebtQuery creates a debt query for the given order identifier.
func NewGetOrderDebtQuery(orderID kernel.UUID) (GetOrderDebtQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDebtQuery{}, err
	}

	return GetOrderDebtQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order whose debt is computed.
func (q GetOrderDebtQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDebtQueryIsNotConstructed if validation fails.
func (q GetOrderDebtQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDebtQueryIsNotConstructed)
}

// GetOrderDebtQueryResponse carries the debt computation: the order total, the
// sum of confirmed payments, and the difference between the two.
type GetOrderDebtQueryResponse struct {
	OrderID   kernel.UUID
	Total     int64
	Confirmed int64
	Debt      int64
}
