package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must enforce optimistic concurrency on Update: a write whose
// in-memory version does not follow the stored version fails with a
// VersionConflictError instead of silently clobbering a concurrent change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with ObjectNotFoundError if the order does not exist and with
	// VersionConflictError if the stored version no longer matches the
	// version the aggregate was loaded at.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves all orders still in pending status
	// that were placed before the cutoff. Used by the stale-order sweep.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
