package http

import (
	"net/http"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// NewDeliveryRequest is the body of POST /api/v1/orders/:id/delivery.
type NewDeliveryRequest struct {
	Address     string    `json:"address"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// NewPaymentRequest is the body of POST /api/v1/orders/:id/payments.
type NewPaymentRequest struct {
	Kind   string `json:"kind"`
	Method string `json:"method"`
	Amount int64  `json:"amount"`
}

// StatusUpdateRequest is the body of the PATCH .../status routes.
type StatusUpdateRequest struct {
	Target string `json:"target"`
}

// CreateDelivery handles POST /api/v1/orders/:id/delivery - schedules the
// delivery of an allocated or invoiced order.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req NewDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, orderID, req.Address, req.ScheduledAt)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.commands.CreateDelivery.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
// Marking a delivery as delivered also advances the invoiced order.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var req StatusUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, target, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.commands.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/orders/:id/payments - records a pending
// payment against an order.
func (s *Server) CreatePayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req NewPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := payment.KindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid payment kind: "+err.Error())
	}
	method, err := kernel.PaymentMethodFromString(req.Method)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(paymentID, orderID, kind, method, req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.commands.CreatePayment.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: paymentID.String()})
}

// UpdatePaymentStatus handles PATCH /api/v1/payments/:id/status - confirms or
// fails a pending payment.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	paymentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid payment ID: "+err.Error())
	}

	var req StatusUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := payment.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(paymentID, target, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.commands.UpdatePaymentStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
