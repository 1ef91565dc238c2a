package queries

import (
	"context"
	"database/sql"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order summary from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns an ObjectNotFoundError when no order carries the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var summary GetOrderQueryResponse
	var id, customerID, dealerID uuid.UUID
	var paymentMethod, status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			dealer_id,
			total,
			payment_method,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&dealerID,
		&summary.Total,
		&paymentMethod,
		&status,
		&summary.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if summary.DealerID, err = kernel.UUIDFromBytes(dealerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	summary.PaymentMethod = kernel.PaymentMethod(paymentMethod)
	if err = summary.PaymentMethod.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	summary.Status = order.Status(status)
	if err = summary.Status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return summary, nil
}
