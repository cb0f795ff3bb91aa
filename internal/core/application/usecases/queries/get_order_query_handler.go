package queries

import (
	"context"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order by ID.
// Returns an object-not-found error when no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, positions, err := scanOrders(ctx, h.db, `
		SELECT
			id,
			customer_name,
			customer_email,
			customer_phone,
			subtotal_cents,
			shipping_cost_cents,
			tax_amount_cents,
			service_fee_cents,
			grand_total_cents,
			shipping_address,
			billing_address,
			payment_method,
			status,
			cancellation_reason,
			cancelled_at,
			return_reason,
			returned_at,
			created_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}

	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err = attachLineItems(ctx, h.db, orders, positions); err != nil {
		return OrderView{}, err
	}

	return orders[0], nil
}
