// Package http exposes the fulfillment use cases over a REST API.
//
// Actor identity travels in the X-Actor-Role and X-Actor-Name headers;
// authentication is handled outside this service. Handlers translate requests
// into commands and queries and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder              commands.CreateOrderCommandHandler
	TransitionOrder          commands.TransitionOrderCommandHandler
	CreateDelivery           commands.CreateDeliveryCommandHandler
	UpdateDeliveryStatus     commands.UpdateDeliveryStatusCommandHandler
	CreatePayment            commands.CreatePaymentCommandHandler
	UpdatePaymentStatus      commands.UpdatePaymentStatusCommandHandler
	CreateVehicleRequest     commands.CreateVehicleRequestCommandHandler
	TransitionVehicleRequest commands.TransitionVehicleRequestCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetOrder          queries.GetOrderQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetOrderDebt      queries.GetOrderDebtQueryHandler
	GetInventory      queries.GetInventoryQueryHandler
	GetPendingTasks   queries.GetPendingTasksQueryHandler
	GetAllowedActions queries.GetAllowedActionsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/transitions", s.TransitionOrder)
	api.GET("/orders/:id/actions", s.GetOrderActions)
	api.GET("/orders/:id/debt", s.GetOrderDebt)
	api.POST("/orders/:id/delivery", s.CreateDelivery)
	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/orders/:id/payments", s.CreatePayment)
	api.PATCH("/payments/:id/status", s.UpdatePaymentStatus)
	api.GET("/inventory", s.GetInventory)
	api.POST("/vehicle-requests", s.CreateVehicleRequest)
	api.POST("/vehicle-requests/:id/transitions", s.TransitionVehicleRequest)
	api.GET("/dashboard/pending", s.GetPendingTasks)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeDomainError maps a use-case failure onto an HTTP status code:
// missing aggregates are 404, role violations 403, state conflicts 409,
// invalid input 400, everything else 500.
func writeDomainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, delivery.ErrForbidden),
		errors.Is(err, payment.ErrForbidden),
		errors.Is(err, vehiclerequest.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, payment.ErrInvalidTransition),
		errors.Is(err, vehiclerequest.ErrInvalidTransition),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, commands.ErrOrderNotReadyForDelivery),
		errors.Is(err, commands.ErrDeliveryAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// actorFromHeaders builds the acting identity from the X-Actor-Role and
// X-Actor-Name request headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(role, ctx.Request().Header.Get("X-Actor-Name"))
}

// pathUUID parses the :id path parameter of the current route.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
