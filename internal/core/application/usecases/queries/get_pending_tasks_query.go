package queries

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/guard"
)

var (
	ErrGetPendingTasksQueryIsNotConstructed = errors.New(
		"GetPendingTasksQuery must be created via NewGetPendingTasksQuery constructor",
	)
)

// GetPendingTasksQuery builds the dashboard read model: how many orders sit in
// each workflow status and which payments still await confirmation. Both the
// dealer and manufacturer dashboards render from this single computation.
type GetPendingTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingTasksQuery creates a dashboard query.
// This is a parameterless query covering the whole system.
func NewGetPendingTasksQuery() GetPendingTasksQuery {
	return GetPendingTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingTasksQueryIsNotConstructed if validation fails.
func (q GetPendingTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTasksQueryIsNotConstructed)
}

// PendingPaymentResponse identifies one payment awaiting confirmation.
type PendingPaymentResponse struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	Amount    int64
	CreatedAt time.Time
}

// GetPendingTasksQueryResponse aggregates everything that needs human
// attention: order counts per status and the open payment list.
type GetPendingTasksQueryResponse struct {
	OrdersByStatus  map[order.Status]int
	PendingPayments []PendingPaymentResponse
}
