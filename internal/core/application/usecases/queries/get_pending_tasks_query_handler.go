package queries

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingTasksQueryHandler assembles the dashboard read model from two
// aggregate queries: order counts grouped by status and the open payment list.
type GetPendingTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingTasksQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetPendingTasksQueryHandler(db *gorm.DB) GetPendingTasksQueryHandler {
	return GetPendingTasksQueryHandler{db: db}
}

// Handle executes the dashboard computation.
func (h GetPendingTasksQueryHandler) Handle(
	ctx context.Context,
	query GetPendingTasksQuery,
) (GetPendingTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingTasksQueryResponse{}, err
	}

	response := GetPendingTasksQueryResponse{
		OrdersByStatus:  make(map[order.Status]int),
		PendingPayments: make([]PendingPaymentResponse, 0),
	}

	if err := h.countOrders(ctx, &response); err != nil {
		return GetPendingTasksQueryResponse{}, err
	}
	if err := h.collectPendingPayments(ctx, &response); err != nil {
		return GetPendingTasksQueryResponse{}, err
	}

	return response, nil
}

func (h GetPendingTasksQueryHandler) countOrders(
	ctx context.Context,
	response *GetPendingTasksQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return err
		}

		orderStatus := order.Status(status)
		if err = orderStatus.Validate(); err != nil {
			return err
		}
		response.OrdersByStatus[orderStatus] = count
	}

	return rows.Err()
}

func (h GetPendingTasksQueryHandler) collectPendingPayments(
	ctx context.Context,
	response *GetPendingTasksQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			created_at
		FROM payments
		WHERE status = ?
		ORDER BY created_at
	`, int(payment.Pending)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var pending PendingPaymentResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&pending.Amount,
			&pending.CreatedAt,
		)
		if err != nil {
			return err
		}

		if pending.PaymentID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if pending.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return err
		}

		response.PendingPayments = append(response.PendingPayments, pending)
	}

	return rows.Err()
}
