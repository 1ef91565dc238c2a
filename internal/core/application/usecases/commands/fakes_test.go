package commands_test

import (
	"context"
	"sync"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/inventory"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehiclerequest"
	"dealership/internal/core/ports"
	"dealership/internal/pkg/errs"
)

// fakeStore is an in-memory ledger shared by fake units of work. A single
// mutex plays the role of row locks: each transaction holds it from Begin to
// Commit/Rollback, so transactions serialize the way locked rows do in
// postgres. Aggregates are copied on read so uncommitted mutations on a loaded
// aggregate never leak into the store.
type fakeStore struct {
	mu sync.Mutex

	orders    map[kernel.UUID]*order.Order
	inventory map[string]*inventory.Record
	delivs    map[kernel.UUID]*delivery.Delivery
	payments  map[kernel.UUID]*payment.Payment
	requests  map[kernel.UUID]*vehiclerequest.VehicleRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:    make(map[kernel.UUID]*order.Order),
		inventory: make(map[string]*inventory.Record),
		delivs:    make(map[kernel.UUID]*delivery.Delivery),
		payments:  make(map[kernel.UUID]*payment.Payment),
		requests:  make(map[kernel.UUID]*vehiclerequest.VehicleRequest),
	}
}

func invKey(owner inventory.Owner, key inventory.StockKey) string {
	return owner.String() + "|" + key.String()
}

// seedStock installs a record outside any transaction.
func (s *fakeStore) seedStock(owner inventory.Owner, key inventory.StockKey, qty int) error {
	record, err := inventory.NewRecord(kernel.NewUUID(), owner, key, qty)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[invKey(owner, key)] = record
	return nil
}

func (s *fakeStore) stock(owner inventory.Owner, key inventory.StockKey) (quantity, reserved int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.inventory[invKey(owner, key)]
	if !ok {
		return 0, 0, false
	}
	return record.Quantity(), record.Reserved(), true
}

func (s *fakeStore) orderStatus(id kernel.UUID) (order.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return order.Unknown, false
	}
	return o.Status(), true
}

// fakeUoW implements every narrow unit of work over the shared store.
// Each instance is used by a single goroutine, matching how handlers create
// one unit of work per command.
type fakeUoW struct {
	store  *fakeStore
	active bool
}

func (u *fakeUoW) Begin(context.Context) error {
	u.store.mu.Lock()
	u.active = true
	return nil
}

func (u *fakeUoW) Commit(context.Context) error {
	u.active = false
	u.store.mu.Unlock()
	return nil
}

func (u *fakeUoW) Rollback(context.Context) error {
	// The deferred rollback after a successful commit is a no-op.
	if u.active {
		u.active = false
		u.store.mu.Unlock()
	}
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository         { return &fakeOrderRepo{u.store} }
func (u *fakeUoW) InventoryRepository() ports.InventoryRepository { return &fakeInventoryRepo{u.store} }
func (u *fakeUoW) DeliveryRepository() ports.DeliveryRepository   { return &fakeDeliveryRepo{u.store} }
func (u *fakeUoW) PaymentRepository() ports.PaymentRepository     { return &fakePaymentRepo{u.store} }
func (u *fakeUoW) VehicleRequestRepository() ports.VehicleRequestRepository {
	return &fakeRequestRepo{u.store}
}

// fakeUoWFactory satisfies every *UoWFactory interface in this package.
type fakeUoWFactory struct {
	store *fakeStore
}

func (f *fakeUoWFactory) Create() *fakeUoW { return &fakeUoW{store: f.store} }

type fakeOrderUoWFactory struct{ *fakeUoWFactory }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return f.fakeUoWFactory.Create() }

type fakeOrderInventoryUoWFactory struct{ *fakeUoWFactory }

func (f fakeOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f.fakeUoWFactory.Create()
}

type fakeDeliveryOrderUoWFactory struct{ *fakeUoWFactory }

func (f fakeDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f.fakeUoWFactory.Create()
}

type fakePaymentOrderUoWFactory struct{ *fakeUoWFactory }

func (f fakePaymentOrderUoWFactory) Create() commands.PaymentOrderUoW {
	return f.fakeUoWFactory.Create()
}

type fakeVehicleRequestUoWFactory struct{ *fakeUoWFactory }

func (f fakeVehicleRequestUoWFactory) Create() commands.VehicleRequestUoW {
	return f.fakeUoWFactory.Create()
}

type fakeVehicleRequestInventoryUoWFactory struct{ *fakeUoWFactory }

func (f fakeVehicleRequestInventoryUoWFactory) Create() commands.VehicleRequestInventoryUoW {
	return f.fakeUoWFactory.Create()
}

type fakeOrderRepo struct{ store *fakeStore }

func (r *fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.store.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	r.store.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.RestoreOrder(
		o.ID(), o.CustomerID(), o.DealerID(),
		o.Items(), o.PaymentMethod(), o.Status(), o.CreatedAt(), o.Audit(),
	)
}

type fakeInventoryRepo struct{ store *fakeStore }

func (r *fakeInventoryRepo) Add(_ context.Context, record *inventory.Record) error {
	r.store.inventory[invKey(record.Owner(), record.Key())] = record
	return nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, record *inventory.Record) error {
	r.store.inventory[invKey(record.Owner(), record.Key())] = record
	return nil
}

func (r *fakeInventoryRepo) Get(
	_ context.Context, owner inventory.Owner, key inventory.StockKey,
) (*inventory.Record, error) {
	record, ok := r.store.inventory[invKey(owner, key)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("inventory record", key.String())
	}
	return inventory.RestoreRecord(record.ID(), record.Owner(), record.Key(), record.Quantity(), record.Reserved())
}

func (r *fakeInventoryRepo) GetForUpdate(
	ctx context.Context, owner inventory.Owner, key inventory.StockKey,
) (*inventory.Record, error) {
	// The transaction already holds the store lock.
	return r.Get(ctx, owner, key)
}

func (r *fakeInventoryRepo) GetAllByOwner(
	_ context.Context, owner inventory.Owner,
) ([]*inventory.Record, error) {
	var records []*inventory.Record
	for _, record := range r.store.inventory {
		if record.Owner().IsEqual(owner) {
			records = append(records, record)
		}
	}
	return records, nil
}

type fakeDeliveryRepo struct{ store *fakeStore }

func (r *fakeDeliveryRepo) Add(_ context.Context, d *delivery.Delivery) error {
	r.store.delivs[d.ID()] = d
	return nil
}

func (r *fakeDeliveryRepo) Update(_ context.Context, d *delivery.Delivery) error {
	r.store.delivs[d.ID()] = d
	return nil
}

func (r *fakeDeliveryRepo) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	d, ok := r.store.delivs[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id)
	}
	return delivery.RestoreDelivery(d.ID(), d.OrderID(), d.Address(), d.ScheduledAt(), d.Status(), d.CreatedAt())
}

func (r *fakeDeliveryRepo) GetByOrderID(_ context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	for _, d := range r.store.delivs {
		if d.OrderID().IsEqual(orderID) {
			return delivery.RestoreDelivery(d.ID(), d.OrderID(), d.Address(), d.ScheduledAt(), d.Status(), d.CreatedAt())
		}
	}
	return nil, errs.NewObjectNotFoundError("delivery", orderID)
}

type fakePaymentRepo struct{ store *fakeStore }

func (r *fakePaymentRepo) Add(_ context.Context, p *payment.Payment) error {
	r.store.payments[p.ID()] = p
	return nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *payment.Payment) error {
	r.store.payments[p.ID()] = p
	return nil
}

func (r *fakePaymentRepo) Get(_ context.Context, id kernel.UUID) (*payment.Payment, error) {
	p, ok := r.store.payments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("payment", id)
	}
	return payment.RestorePayment(p.ID(), p.OrderID(), p.Kind(), p.Method(), p.Amount(), p.Status(), p.CreatedAt())
}

func (r *fakePaymentRepo) GetAllByOrderID(_ context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	var payments []*payment.Payment
	for _, p := range r.store.payments {
		if p.OrderID().IsEqual(orderID) {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

type fakeRequestRepo struct{ store *fakeStore }

func (r *fakeRequestRepo) Add(_ context.Context, req *vehiclerequest.VehicleRequest) error {
	r.store.requests[req.ID()] = req
	return nil
}

func (r *fakeRequestRepo) Update(_ context.Context, req *vehiclerequest.VehicleRequest) error {
	r.store.requests[req.ID()] = req
	return nil
}

func (r *fakeRequestRepo) Get(_ context.Context, id kernel.UUID) (*vehiclerequest.VehicleRequest, error) {
	req, ok := r.store.requests[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle request", id)
	}
	return vehiclerequest.RestoreVehicleRequest(
		req.ID(), req.DealerID(), req.Items(), req.Status(), req.CreatedAt(), req.Audit(),
	)
}
