package cmd

import (
	"dealership/internal/adapters/out/postgres"
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentOrderUoWFactory = FuncPaymentOrderUoWFactory(func() commands.PaymentOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	var f commands.PaymentOrderUoWFactory = FuncPaymentOrderUoWFactory(func() commands.PaymentOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleRequestCommandHandler() commands.CreateVehicleRequestCommandHandler {
	var f commands.VehicleRequestUoWFactory = FuncVehicleRequestUoWFactory(func() commands.VehicleRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionVehicleRequestCommandHandler() commands.TransitionVehicleRequestCommandHandler {
	var f commands.VehicleRequestInventoryUoWFactory = FuncVehicleRequestInventoryUoWFactory(
		func() commands.VehicleRequestInventoryUoW {
			return c.uowFactory.Create()
		},
	)
	return commands.NewTransitionVehicleRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDebtQueryHandler() queries.GetOrderDebtQueryHandler {
	return queries.NewGetOrderDebtQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingTasksQueryHandler() queries.GetPendingTasksQueryHandler {
	return queries.NewGetPendingTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllowedActionsQueryHandler() queries.GetAllowedActionsQueryHandler {
	return queries.NewGetAllowedActionsQueryHandler()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderInventoryUoWFactory func() commands.OrderInventoryUoW

func (f FuncOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}

type FuncPaymentOrderUoWFactory func() commands.PaymentOrderUoW

func (f FuncPaymentOrderUoWFactory) Create() commands.PaymentOrderUoW {
	return f()
}

type FuncVehicleRequestUoWFactory func() commands.VehicleRequestUoW

func (f FuncVehicleRequestUoWFactory) Create() commands.VehicleRequestUoW {
	return f()
}

type FuncVehicleRequestInventoryUoWFactory func() commands.VehicleRequestInventoryUoW

func (f FuncVehicleRequestInventoryUoWFactory) Create() commands.VehicleRequestInventoryUoW {
	return f()
}
