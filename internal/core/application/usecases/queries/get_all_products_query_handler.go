package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves all catalog products from the database.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for catalog queries.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve every product, sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents,
			stock,
			created_at
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = productID

		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
