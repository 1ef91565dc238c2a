package http

import (
	"net/http"
	"time"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/inventory"

	"github.com/labstack/echo/v4"
)

// InventoryPositionResponse is one stock position of the inventory projection.
type InventoryPositionResponse struct {
	Owner     string `json:"owner"`
	Variant   string `json:"variant"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
}

// PendingPaymentItem is one payment awaiting confirmation on the dashboard.
type PendingPaymentItem struct {
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingTasksResponse is the dashboard read model.
type PendingTasksResponse struct {
	OrdersByStatus  map[string]int       `json:"orders_by_status"`
	PendingPayments []PendingPaymentItem `json:"pending_payments"`
}

// GetInventory handles GET /api/v1/inventory - lists stock positions filtered
// by the optional variant, color, and owner query parameters.
func (s *Server) GetInventory(ctx echo.Context) error {
	var ownerFilter *inventory.Owner
	if raw := ctx.QueryParam("owner"); raw != "" {
		owner, err := inventory.OwnerFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid owner filter: "+err.Error())
		}
		ownerFilter = &owner
	}

	query := queries.NewGetInventoryQuery(
		ctx.QueryParam("variant"), ctx.QueryParam("color"), ownerFilter,
	)

	positions, err := s.queries.GetInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]InventoryPositionResponse, len(positions))
	for i, p := range positions {
		response[i] = InventoryPositionResponse{
			Owner:     p.Owner.String(),
			Variant:   p.Variant,
			Color:     p.Color,
			Quantity:  p.Quantity,
			Reserved:  p.Reserved,
			Available: p.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingTasks handles GET /api/v1/dashboard/pending - the work queue both
// dealer and manufacturer dashboards render from.
func (s *Server) GetPendingTasks(ctx echo.Context) error {
	tasks, err := s.queries.GetPendingTasks.Handle(
		ctx.Request().Context(), queries.NewGetPendingTasksQuery(),
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	byStatus := make(map[string]int, len(tasks.OrdersByStatus))
	for status, count := range tasks.OrdersByStatus {
		byStatus[status.String()] = count
	}

	pending := make([]PendingPaymentItem, len(tasks.PendingPayments))
	for i, p := range tasks.PendingPayments {
		pending[i] = PendingPaymentItem{
			PaymentID: p.PaymentID.String(),
			OrderID:   p.OrderID.String(),
			Amount:    p.Amount,
			CreatedAt: p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, PendingTasksResponse{
		OrdersByStatus:  byStatus,
		PendingPayments: pending,
	})
}
