// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat view models instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order in the store.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the full collection.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderView represents a complete order record as exposed to readers.
// All money fields are integer cents; the status is the lowercase wire label.
type OrderView struct {
	ID                 kernel.UUID
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Items              []OrderLineItemView
	SubtotalCents      int64
	ShippingCostCents  int64
	TaxAmountCents     int64
	ServiceFeeCents    int64
	GrandTotalCents    int64
	ShippingAddress    string
	BillingAddress     string
	PaymentMethod      string
	Status             string
	CancellationReason *string
	CancelledAt        *time.Time
	ReturnReason       *string
	ReturnedAt         *time.Time
	CreatedAt          time.Time
	Version            int64
}

// OrderLineItemView represents one purchased item within an order view.
type OrderLineItemView struct {
	ProductID      kernel.UUID
	Name           string
	Quantity       int
	UnitPriceCents int64
	SubtotalCents  int64
}
