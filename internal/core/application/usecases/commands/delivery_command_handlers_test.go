package commands_test

import (
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDeliveryInStatus(t *testing.T, orderID kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), orderID, "12 Nguyen Trai, Hanoi",
		time.Now().Add(48*time.Hour), status, time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestCreateDeliveryCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrderInStatus(t, order.New)

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), testOrder.ID(), "12 Nguyen Trai, Hanoi", time.Now().Add(48*time.Hour),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotReadyForDelivery)
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_DeliveryAlreadyExists(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrderInStatus(t, order.Allocated)
	existing := testDeliveryInStatus(t, testOrder.ID(), delivery.Pending)

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), testOrder.ID(), "12 Nguyen Trai, Hanoi", time.Now().Add(48*time.Hour),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDeliveryAlreadyExists)
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrderInStatus(t, order.Invoiced)
	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, testOrder.ID(), "12 Nguyen Trai, Hanoi", time.Now().Add(48*time.Hour),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testOrder.ID())).
			Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := deliveryRepo.Calls[len(deliveryRepo.Calls)-1]
	created := addCall.Arguments[1].(*delivery.Delivery)
	assert.True(t, created.ID().IsEqual(deliveryID))
	assert.True(t, created.OrderID().IsEqual(testOrder.ID()))
	assert.Equal(t, delivery.Pending, created.Status())

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_BackfillForDeliveredOrder(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrderInStatus(t, order.Delivered)
	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, testOrder.ID(), "12 Nguyen Trai, Hanoi", time.Now().Add(48*time.Hour),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testOrder.ID())).
			Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := deliveryRepo.Calls[len(deliveryRepo.Calls)-1]
	created := addCall.Arguments[1].(*delivery.Delivery)
	assert.Equal(t, delivery.Pending, created.Status())

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Start(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	handover := testDeliveryInStatus(t, orderID, delivery.Pending)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		handover.ID(), delivery.InProgress, testActor(t, kernel.DealerStaff),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("Get", ctx, handover.ID()).Return(handover, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.InProgress, handover.Status())

	// The order is only touched when the delivery completes.
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredCompletesOrder(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrderInStatus(t, order.Invoiced)
	handover := testDeliveryInStatus(t, testOrder.ID(), delivery.InProgress)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		handover.ID(), delivery.Delivered, testActor(t, kernel.DealerStaff),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("Get", ctx, handover.ID()).Return(handover, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, handover.Status())
	assert.Equal(t, order.Delivered, testOrder.Status())

	require.Len(t, testOrder.Audit(), 1)
	assert.Equal(t, "delivered", testOrder.Audit()[0].Action())
	assert.Equal(t, "delivery completed", testOrder.Audit()[0].Note())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_OrderAlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrderInStatus(t, order.Delivered)
	handover := testDeliveryInStatus(t, testOrder.ID(), delivery.InProgress)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		handover.ID(), delivery.Delivered, testActor(t, kernel.DealerStaff),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("Get", ctx, handover.ID()).Return(handover, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Finishing a backfilled delivery leaves the closed order untouched.
	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, handover.Status())
	assert.Equal(t, order.Delivered, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()
	handover := testDeliveryInStatus(t, kernel.NewUUID(), delivery.Pending)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		handover.ID(), delivery.InProgress, testActor(t, kernel.ManufacturerStaff),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("Get", ctx, handover.ID()).Return(handover, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrForbidden)
	assert.Equal(t, delivery.Pending, handover.Status())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
