package queries

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves order summaries from the database.
// Filters by status in SQL when the query carries one.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns order summaries, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			dealer_id,
			total,
			payment_method,
			status,
			created_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += " WHERE status = ?"
		args = append(args, int(*query.Status()))
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)

	for rows.Next() {
		var summary GetOrderQueryResponse
		var id, customerID, dealerID uuid.UUID
		var paymentMethod, status int

		err = rows.Scan(
			&id,
			&customerID,
			&dealerID,
			&summary.Total,
			&paymentMethod,
			&status,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if summary.DealerID, err = kernel.UUIDFromBytes(dealerID[:]); err != nil {
			return nil, err
		}

		summary.PaymentMethod = kernel.PaymentMethod(paymentMethod)
		if err = summary.PaymentMethod.Validate(); err != nil {
			return nil, err
		}

		summary.Status = order.Status(status)
		if err = summary.Status.Validate(); err != nil {
			return nil, err
		}

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
