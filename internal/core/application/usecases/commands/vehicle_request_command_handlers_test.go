package commands_test

import (
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRequestItem(t *testing.T, variant, color string, qty int) vehiclerequest.Item {
	t.Helper()
	item, err := vehiclerequest.NewItem(variant, color, qty, "showroom restock")
	require.NoError(t, err)
	return item
}

func testRequestInStatus(t *testing.T, status vehiclerequest.Status) *vehiclerequest.VehicleRequest {
	t.Helper()
	request, err := vehiclerequest.RestoreVehicleRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		[]vehiclerequest.Item{testRequestItem(t, "VF9", "white", 3)},
		status, time.Now(), nil,
	)
	require.NoError(t, err)
	return request
}

func TestNewCreateVehicleRequestCommand_InvalidArguments(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateVehicleRequestCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
		require.Error(t, err)
	})

	t.Run("zero dealer ID", func(t *testing.T) {
		_, err := commands.NewCreateVehicleRequestCommand(
			kernel.NewUUID(), kernel.UUID{},
			[]vehiclerequest.Item{testRequestItem(t, "VF9", "white", 3)},
		)
		require.Error(t, err)
	})
}

func TestCreateVehicleRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateVehicleRequestCommand{} // not constructed properly

	factory := new(MockVehicleRequestUoWFactory)
	handler := commands.NewCreateVehicleRequestCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateVehicleRequestCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateVehicleRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	dealerID := kernel.NewUUID()

	cmd, err := commands.NewCreateVehicleRequestCommand(
		requestID, dealerID,
		[]vehiclerequest.Item{testRequestItem(t, "VF9", "white", 3)},
	)
	require.NoError(t, err)

	requestRepo := new(MockVehicleRequestRepository)
	uow := new(MockUoW)
	uow.On("VehicleRequestRepository").Return(requestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Add", ctx, mock.AnythingOfType("*vehiclerequest.VehicleRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateVehicleRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := requestRepo.Calls[0]
	created := addCall.Arguments[1].(*vehiclerequest.VehicleRequest)
	assert.True(t, created.ID().IsEqual(requestID))
	assert.True(t, created.DealerID().IsEqual(dealerID))
	assert.Equal(t, vehiclerequest.Pending, created.Status())

	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionVehicleRequestCommandHandler_Handle_RejectTouchesNoStock(t *testing.T) {
	ctx := t.Context()
	request := testRequestInStatus(t, vehiclerequest.Pending)

	cmd, err := commands.NewTransitionVehicleRequestCommand(
		request.ID(), vehiclerequest.Rejected, testActor(t, kernel.ManufacturerStaff), "no production slots",
	)
	require.NoError(t, err)

	requestRepo := new(MockVehicleRequestRepository)
	uow := new(MockUoW)
	uow.On("VehicleRequestRepository").Return(requestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*vehiclerequest.VehicleRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleRequestInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionVehicleRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, vehiclerequest.Rejected, request.Status())

	require.Len(t, request.Audit(), 1)
	assert.Equal(t, "rejected", request.Audit()[0].Action())
	assert.Equal(t, "no production slots", request.Audit()[0].Note())

	uow.AssertNotCalled(t, "InventoryRepository")
	uow.AssertExpectations(t)
}

func TestTransitionVehicleRequestCommandHandler_Handle_CancelByWrongRole(t *testing.T) {
	ctx := t.Context()
	request := testRequestInStatus(t, vehiclerequest.Pending)

	cmd, err := commands.NewTransitionVehicleRequestCommand(
		request.ID(), vehiclerequest.Cancelled, testActor(t, kernel.DealerStaff), "",
	)
	require.NoError(t, err)

	requestRepo := new(MockVehicleRequestRepository)
	uow := new(MockUoW)
	uow.On("VehicleRequestRepository").Return(requestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleRequestInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionVehicleRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, vehiclerequest.ErrForbidden)
	assert.Equal(t, vehiclerequest.Pending, request.Status())
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionVehicleRequestCommandHandler_Handle_FulfillFromPending(t *testing.T) {
	ctx := t.Context()
	request := testRequestInStatus(t, vehiclerequest.Pending)

	cmd, err := commands.NewTransitionVehicleRequestCommand(
		request.ID(), vehiclerequest.Fulfilled, testActor(t, kernel.DealerManager), "",
	)
	require.NoError(t, err)

	requestRepo := new(MockVehicleRequestRepository)
	uow := new(MockUoW)
	uow.On("VehicleRequestRepository").Return(requestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleRequestInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionVehicleRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Fulfilled is only reachable from Approved.
	require.ErrorIs(t, err, vehiclerequest.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
