// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dealership/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// VehicleRequestRepoFactory provides access to the vehicle request repository within a transaction.
	VehicleRequestRepoFactory interface {
		VehicleRequestRepository() ports.VehicleRequestRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderInventoryUoW manages transactions spanning the order aggregate, the
	// inventory ledger and the order's delivery record. Used by the transition
	// command: allocation and release side effects must land atomically with
	// the status change, and the direct delivered edge closes out an in-flight
	// delivery in the same transaction.
	OrderInventoryUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		DeliveryRepoFactory
	}

	// OrderInventoryUoWFactory creates new order+inventory unit of work instances.
	OrderInventoryUoWFactory interface {
		Create() OrderInventoryUoW
	}

	// DeliveryOrderUoW manages transactions spanning deliveries and their order.
	// Delivery creation checks the order's status; delivery completion advances it.
	DeliveryOrderUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// DeliveryOrderUoWFactory creates new delivery+order unit of work instances.
	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}

	// PaymentOrderUoW manages transactions spanning payments and their order.
	PaymentOrderUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentOrderUoWFactory creates new payment+order unit of work instances.
	PaymentOrderUoWFactory interface {
		Create() PaymentOrderUoW
	}

	// VehicleRequestUoW manages transactions for request-only operations.
	VehicleRequestUoW interface {
		TxManager
		VehicleRequestRepoFactory
	}

	// VehicleRequestUoWFactory creates new vehicle request unit of work instances.
	VehicleRequestUoWFactory interface {
		Create() VehicleRequestUoW
	}

	// VehicleRequestInventoryUoW manages transactions spanning vehicle requests
	// and the inventory ledger. Approval allocates stock atomically with the
	// status change.
	VehicleRequestInventoryUoW interface {
		TxManager
		VehicleRequestRepoFactory
		InventoryRepoFactory
	}

	// VehicleRequestInventoryUoWFactory creates new request+inventory unit of work instances.
	VehicleRequestInventoryUoWFactory interface {
		Create() VehicleRequestInventoryUoW
	}
)
