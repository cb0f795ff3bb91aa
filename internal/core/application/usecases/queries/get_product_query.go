package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetProductQuery retrieves a single catalog product by ID.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve one product.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	productQuery := GetProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := productQuery.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return productQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q *GetProductQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}
