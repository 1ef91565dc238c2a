package commands_test

import (
	"context"
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, r *inventory.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, r *inventory.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(
	ctx context.Context, owner inventory.Owner, key inventory.StockKey,
) (*inventory.Record, error) {
	args := m.Called(ctx, owner, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(
	ctx context.Context, owner inventory.Owner, key inventory.StockKey,
) (*inventory.Record, error) {
	args := m.Called(ctx, owner, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) GetAllByOwner(
	ctx context.Context, owner inventory.Owner,
) ([]*inventory.Record, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Record), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockVehicleRequestRepository struct{ mock.Mock }

func (m *MockVehicleRequestRepository) Add(ctx context.Context, r *vehiclerequest.VehicleRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockVehicleRequestRepository) Update(ctx context.Context, r *vehiclerequest.VehicleRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockVehicleRequestRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*vehiclerequest.VehicleRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehiclerequest.VehicleRequest), args.Error(1)
}

// MockUoW implements every repository factory plus the transaction manager, so
// each handler test binds it to whichever narrow unit of work it needs.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) VehicleRequestRepository() ports.VehicleRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRequestRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderInventoryUoWFactory struct{ mock.Mock }

func (m *MockOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderInventoryUoW)
}

type MockDeliveryOrderUoWFactory struct{ mock.Mock }

func (m *MockDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryOrderUoW)
}

type MockPaymentOrderUoWFactory struct{ mock.Mock }

func (m *MockPaymentOrderUoWFactory) Create() commands.PaymentOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentOrderUoW)
}

type MockVehicleRequestUoWFactory struct{ mock.Mock }

func (m *MockVehicleRequestUoWFactory) Create() commands.VehicleRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleRequestUoW)
}

type MockVehicleRequestInventoryUoWFactory struct{ mock.Mock }

func (m *MockVehicleRequestInventoryUoWFactory) Create() commands.VehicleRequestInventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleRequestInventoryUoW)
}

// Test fixtures shared across handler tests.

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, "Tester")
	require.NoError(t, err)
	return actor
}

func testItem(t *testing.T, variant, color string, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(variant, color, qty, 10000)
	require.NoError(t, err)
	return item
}

func testOrderInStatus(t *testing.T, status order.Status, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{testItem(t, "VF8", "black", 2)}
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		items, kernel.Cash, status, time.Now(), nil,
	)
	require.NoError(t, err)
	return o
}

func testStockKey(t *testing.T, variant, color string) inventory.StockKey {
	t.Helper()
	key, err := inventory.NewStockKey(variant, color)
	require.NoError(t, err)
	return key
}

func testRecord(t *testing.T, owner inventory.Owner, key inventory.StockKey, qty int) *inventory.Record {
	t.Helper()
	record, err := inventory.NewRecord(kernel.NewUUID(), owner, key, qty)
	require.NoError(t, err)
	return record
}
