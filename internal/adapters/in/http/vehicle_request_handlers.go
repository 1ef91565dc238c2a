package http

import (
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"

	"github.com/labstack/echo/v4"
)

// NewVehicleRequestRequest is the body of POST /api/v1/vehicle-requests.
type NewVehicleRequestRequest struct {
	DealerID string                      `json:"dealer_id"`
	Items    []VehicleRequestItemRequest `json:"items"`
}

// VehicleRequestItemRequest is one requested stock position.
type VehicleRequestItemRequest struct {
	Variant  string `json:"variant"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// CreateVehicleRequest handles POST /api/v1/vehicle-requests - a dealer asks
// the manufacturer to replenish its stock.
func (s *Server) CreateVehicleRequest(ctx echo.Context) error {
	var req NewVehicleRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dealerID, err := kernel.UUIDFromString(req.DealerID)
	if err != nil {
		return badRequest(ctx, "Invalid dealer ID: "+err.Error())
	}

	items := make([]vehiclerequest.Item, 0, len(req.Items))
	for _, it := range req.Items {
		item, itemErr := vehiclerequest.NewItem(it.Variant, it.Color, it.Quantity, it.Reason)
		if itemErr != nil {
			return badRequest(ctx, "Invalid request item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleRequestCommand(requestID, dealerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.commands.CreateVehicleRequest.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// TransitionVehicleRequest handles POST /api/v1/vehicle-requests/:id/transitions.
// Approval moves the requested stock from the manufacturer pool to the dealer.
func (s *Server) TransitionVehicleRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request ID: "+err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := vehiclerequest.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	cmd, err := commands.NewTransitionVehicleRequestCommand(requestID, target, actor, req.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.commands.TransitionVehicleRequest.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
