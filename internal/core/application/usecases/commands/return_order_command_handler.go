package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ReturnOrderCommandHandler handles order returns.
// Only delivered or received orders can be returned; the rule lives in
// Order.MarkReturned.
type ReturnOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory OrderUoWFactory) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
// Returns the updated order with the return reason and timestamp recorded.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.MarkReturned(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
