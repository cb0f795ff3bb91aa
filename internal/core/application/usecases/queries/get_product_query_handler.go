package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single catalog product.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve one product by ID.
// Returns an object-not-found error when no product exists with the given ID.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents,
			stock,
			created_at
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return ProductView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductView{}, err
		}
		return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	var view ProductView
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&view.Name,
		&view.Description,
		&view.PriceCents,
		&view.Stock,
		&view.CreatedAt,
	)
	if err != nil {
		return ProductView{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductView{}, err
	}
	view.ID = productID

	return view, nil
}
