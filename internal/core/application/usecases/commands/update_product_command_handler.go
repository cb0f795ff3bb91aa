package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// UpdateProductCommandHandler handles catalog product updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// Returns the updated product on success.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeDetails(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
