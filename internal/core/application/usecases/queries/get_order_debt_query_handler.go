package queries

import (
	"context"
	"database/sql"
	"errors"

	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDebtQueryHandler computes an order's outstanding balance in a single
// SQL statement so the number is consistent under concurrent payment updates.
type GetOrderDebtQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDebtQueryHandler creates a handler for debt queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDebtQueryHandler(db *gorm.DB) GetOrderDebtQueryHandler {
	return GetOrderDebtQueryHandler{db: db}
}

// Handle executes the debt computation for one order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderDebtQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDebtQuery,
) (GetOrderDebtQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDebtQueryResponse{}, err
	}

	response := GetOrderDebtQueryResponse{OrderID: query.OrderID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.total,
			COALESCE(SUM(p.amount) FILTER (WHERE p.status = ?), 0) AS confirmed
		FROM orders o
		LEFT JOIN payments p ON p.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.total
	`, int(payment.Confirmed), query.OrderID().Bytes()).Row()

	err := row.Scan(&response.Total, &response.Confirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDebtQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderDebtQueryResponse{}, err
	}

	response.Debt = response.Total - response.Confirmed
	return response, nil
}
