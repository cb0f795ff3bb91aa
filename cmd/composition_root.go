package cmd

import (
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
