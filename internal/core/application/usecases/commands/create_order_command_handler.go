package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders always start in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Builds the aggregate, which computes totals and starts the lifecycle in
// pending status, and persists it within a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.Items(),
		cmd.ShippingCost(),
		cmd.TaxAmount(),
		cmd.ServiceFee(),
		cmd.ShippingAddress(),
		cmd.BillingAddress(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
