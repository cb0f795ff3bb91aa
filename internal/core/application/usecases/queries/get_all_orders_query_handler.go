package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders with their line items from
// the database. Reads bypass the aggregate and scan rows directly into views.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order collection queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve every order.
// Results are sorted by creation time, then ID, for stable output; an empty
// table yields an empty slice, never nil.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = attachLineItems(ctx, h.db, orders, positions); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrders runs an order select and returns the views plus a lookup from
// order ID to slice position, used to attach line items afterwards.
func scanOrders(
	ctx context.Context, db *gorm.DB, query string, args ...any,
) ([]OrderView, map[kernel.UUID]int, error) {
	orders := make([]OrderView, 0)
	positions := make(map[kernel.UUID]int)

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, nil, scanErr
		}

		positions[view.ID] = len(orders)
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, positions, nil
}

func scanOrderRow(rows *sql.Rows) (OrderView, error) {
	var (
		view               OrderView
		id                 uuid.UUID
		status             int
		cancellationReason sql.NullString
		cancelledAt        sql.NullTime
		returnReason       sql.NullString
		returnedAt         sql.NullTime
	)

	err := rows.Scan(
		&id,
		&view.CustomerName,
		&view.CustomerEmail,
		&view.CustomerPhone,
		&view.SubtotalCents,
		&view.ShippingCostCents,
		&view.TaxAmountCents,
		&view.ServiceFeeCents,
		&view.GrandTotalCents,
		&view.ShippingAddress,
		&view.BillingAddress,
		&view.PaymentMethod,
		&status,
		&cancellationReason,
		&cancelledAt,
		&returnReason,
		&returnedAt,
		&view.CreatedAt,
		&view.Version,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID
	view.Status = order.Status(status).String()
	view.Items = make([]OrderLineItemView, 0)

	if cancellationReason.Valid {
		view.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		view.CancelledAt = &cancelledAt.Time
	}
	if returnReason.Valid {
		view.ReturnReason = &returnReason.String
	}
	if returnedAt.Valid {
		view.ReturnedAt = &returnedAt.Time
	}

	return view, nil
}

// attachLineItems loads the order_items rows for the given orders and appends
// each item to its parent view in order of insertion.
func attachLineItems(
	ctx context.Context, db *gorm.DB, orders []OrderView, positions map[kernel.UUID]int,
) error {
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, view := range orders {
		orderIDs = append(orderIDs, view.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			quantity,
			unit_price_cents
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      OrderLineItemView
			orderID   uuid.UUID
			productID uuid.UUID
		)

		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Quantity, &item.UnitPriceCents); err != nil {
			return err
		}

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		item.ProductID = itemProductID
		item.SubtotalCents = item.UnitPriceCents * int64(item.Quantity)

		pos, ok := positions[parentID]
		if !ok {
			continue
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}

	return rows.Err()
}
