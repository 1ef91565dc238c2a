package http

import (
	"net/http"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerID    string                `json:"customer_id"`
	DealerID      string                `json:"dealer_id"`
	PaymentMethod string                `json:"payment_method"`
	Items         []NewOrderItemRequest `json:"items"`
}

// NewOrderItemRequest is one line item of a new order.
type NewOrderItemRequest struct {
	Variant   string `json:"variant"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// TransitionRequest is the body of POST /api/v1/orders/:id/transitions and
// POST /api/v1/vehicle-requests/:id/transitions.
type TransitionRequest struct {
	Target string `json:"target"`
	Note   string `json:"note"`
}

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	DealerID      string    `json:"dealer_id"`
	Total         int64     `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DebtResponse reports how much of an order remains unpaid.
type DebtResponse struct {
	OrderID   string `json:"order_id"`
	Total     int64  `json:"total"`
	Confirmed int64  `json:"confirmed"`
	Debt      int64  `json:"debt"`
}

// ActionsResponse lists the transitions the requesting role may trigger.
type ActionsResponse struct {
	Actions []string `json:"actions"`
}

// CreateOrder handles POST /api/v1/orders - places a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID: "+err.Error())
	}
	dealerID, err := kernel.UUIDFromString(req.DealerID)
	if err != nil {
		return badRequest(ctx, "Invalid dealer ID: "+err.Error())
	}
	method, err := kernel.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		item, itemErr := order.NewItem(it.Variant, it.Color, it.Quantity, it.UnitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, dealerID, items, method)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered by
// the ?status= query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		statusFilter = &status
	}

	orders, err := s.queries.GetAllOrders.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery(statusFilter),
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponseFrom(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(summary))
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions - moves the
// order along the workflow on behalf of the acting role.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor, req.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.commands.TransitionOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderActions handles GET /api/v1/orders/:id/actions - lists the
// transitions the role in X-Actor-Role may trigger from the order's current
// status.
func (s *Server) GetOrderActions(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	orderQuery, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.queries.GetOrder.Handle(ctx.Request().Context(), orderQuery)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	actionsQuery, err := queries.NewGetAllowedActionsQuery(summary.Status, role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	targets, err := s.queries.GetAllowedActions.Handle(ctx.Request().Context(), actionsQuery)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	actions := make([]string, len(targets))
	for i, target := range targets {
		actions[i] = target.String()
	}

	return ctx.JSON(http.StatusOK, ActionsResponse{Actions: actions})
}

// GetOrderDebt handles GET /api/v1/orders/:id/debt.
func (s *Server) GetOrderDebt(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderDebtQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	debt, err := s.queries.GetOrderDebt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DebtResponse{
		OrderID:   debt.OrderID.String(),
		Total:     debt.Total,
		Confirmed: debt.Confirmed,
		Debt:      debt.Debt,
	})
}

func orderResponseFrom(summary queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:            summary.ID.String(),
		CustomerID:    summary.CustomerID.String(),
		DealerID:      summary.DealerID.String(),
		Total:         summary.Total,
		PaymentMethod: summary.PaymentMethod.String(),
		Status:        summary.Status.String(),
		CreatedAt:     summary.CreatedAt,
	}
}
