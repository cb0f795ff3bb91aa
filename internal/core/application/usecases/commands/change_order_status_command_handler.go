package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles generic status transitions.
// Loads the order, applies the transition through the aggregate so the
// transition table is enforced, and persists the result with the optimistic
// version check.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns the updated order on success so callers can render the new state.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	if err = existing.ChangeStatus(cmd.Target()); err != nil {
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
