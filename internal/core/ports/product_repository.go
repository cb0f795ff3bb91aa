package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	// Returns ObjectNotFoundError if no product matches.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns ObjectNotFoundError if no product matches.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Remove deletes a product from the catalog.
	// Returns ObjectNotFoundError if no product matches.
	Remove(ctx context.Context, id kernel.UUID) error
}
