package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product creation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Stock(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
