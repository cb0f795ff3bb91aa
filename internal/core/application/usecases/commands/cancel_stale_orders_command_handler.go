package commands

import (
	"context"
	"time"
)

const staleCancellationReason = "cancelled automatically: order stayed pending too long"

// CancelStaleOrdersCommandHandler cancels pending orders that have exceeded
// the configured age. Each order is cancelled through the aggregate so the
// usual cancellation bookkeeping (reason, timestamp, version bump) applies.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels all pending orders created before now minus the max age.
// Returns the number of orders cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	staleOrders, err := orderRepo.GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.Cancel(staleCancellationReason); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
