// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money is stored as integer cents; the version column backs the optimistic
// concurrency check in Update.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	SubtotalCents      int64
	ShippingCostCents  int64
	TaxAmountCents     int64
	ServiceFeeCents    int64
	GrandTotalCents    int64
	ShippingAddress    string
	BillingAddress     string
	PaymentMethod      string
	Status             int `gorm:"index"`
	CancellationReason *string
	CancelledAt        *time.Time
	ReturnReason       *string
	ReturnedAt         *time.Time
	CreatedAt          time.Time `gorm:"index"`
	Version            int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one purchased line item within an order.
// Rows are insert-only: items never change after the order is placed.
type OrderItemDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerName:       aggregate.Customer().Name(),
		CustomerEmail:      aggregate.Customer().Email(),
		CustomerPhone:      aggregate.Customer().Phone(),
		Items:              items,
		SubtotalCents:      aggregate.Subtotal().Cents(),
		ShippingCostCents:  aggregate.ShippingCost().Cents(),
		TaxAmountCents:     aggregate.TaxAmount().Cents(),
		ServiceFeeCents:    aggregate.ServiceFee().Cents(),
		GrandTotalCents:    aggregate.GrandTotal().Cents(),
		ShippingAddress:    aggregate.ShippingAddress(),
		BillingAddress:     aggregate.BillingAddress(),
		PaymentMethod:      aggregate.PaymentMethod(),
		Status:             int(aggregate.Status()),
		CancellationReason: optionalString(aggregate.CancellationReason()),
		CancelledAt:        aggregate.CancelledAt(),
		ReturnReason:       optionalString(aggregate.ReturnReason()),
		ReturnedAt:         aggregate.ReturnedAt(),
		CreatedAt:          aggregate.CreatedAt(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status annotations using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCostCents)
	if err != nil {
		return nil, err
	}
	taxAmount, err := kernel.NewMoney(dto.TaxAmountCents)
	if err != nil {
		return nil, err
	}
	serviceFee, err := kernel.NewMoney(dto.ServiceFeeCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Customer:           customer,
		Items:              items,
		ShippingCost:       shippingCost,
		TaxAmount:          taxAmount,
		ServiceFee:         serviceFee,
		ShippingAddress:    dto.ShippingAddress,
		BillingAddress:     dto.BillingAddress,
		PaymentMethod:      dto.PaymentMethod,
		Status:             order.Status(dto.Status),
		CancellationReason: stringValue(dto.CancellationReason),
		CancelledAt:        dto.CancelledAt,
		ReturnReason:       stringValue(dto.ReturnReason),
		ReturnedAt:         dto.ReturnedAt,
		CreatedAt:          dto.CreatedAt,
		Version:            dto.Version,
	})
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, dto.Name, dto.Quantity, unitPrice)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
