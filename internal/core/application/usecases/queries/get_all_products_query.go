package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
)

// GetAllProductsQuery retrieves the full product catalog.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all catalog products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// ProductView represents a catalog product as exposed to readers.
// The price is integer cents.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	CreatedAt   time.Time
}
