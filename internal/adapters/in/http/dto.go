package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
)

// Request bodies. Every payload has an explicit typed schema; unknown or
// missing fields fail validation in the command constructors, not here.

// CustomerPayload carries the buyer identity on order creation.
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LineItemPayload carries one purchased item on order creation.
type LineItemPayload struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// CreateOrderRequest is the payload for POST /orders.
// The server assigns the ID and the initial pending status.
type CreateOrderRequest struct {
	Customer          CustomerPayload   `json:"customer"`
	Items             []LineItemPayload `json:"items"`
	ShippingCostCents int64             `json:"shippingCostCents"`
	TaxAmountCents    int64             `json:"taxAmountCents"`
	ServiceFeeCents   int64             `json:"serviceFeeCents"`
	ShippingAddress   string            `json:"shippingAddress"`
	BillingAddress    string            `json:"billingAddress"`
	PaymentMethod     string            `json:"paymentMethod"`
}

// ChangeStatusRequest is the payload for PATCH /orders/:id.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ReasonRequest is the payload for the cancel and return endpoints.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// ProductRequest is the payload for POST /products and PUT /products/:id.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
}

// Response bodies. All share the {success, message?, ...payload} envelope.

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateOrderResponse acknowledges order placement.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// OrdersResponse wraps the full order collection.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// OrderEnvelopeResponse wraps a single order record.
type OrderEnvelopeResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// StatusResponse acknowledges a status transition.
type StatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// SuccessResponse acknowledges an operation with no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreateProductResponse acknowledges product creation.
type CreateProductResponse struct {
	Success   bool   `json:"success"`
	ProductID string `json:"productId"`
}

// ProductsResponse wraps the full catalog.
type ProductsResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}

// ProductEnvelopeResponse wraps a single catalog product.
type ProductEnvelopeResponse struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

// OrderResponse is the wire representation of one order.
// Money fields travel as integer cents; the status is the lowercase label.
type OrderResponse struct {
	ID                 string              `json:"id"`
	Customer           CustomerPayload     `json:"customer"`
	Items              []LineItemResponse  `json:"items"`
	SubtotalCents      int64               `json:"subtotalCents"`
	ShippingCostCents  int64               `json:"shippingCostCents"`
	TaxAmountCents     int64               `json:"taxAmountCents"`
	ServiceFeeCents    int64               `json:"serviceFeeCents"`
	GrandTotalCents    int64               `json:"grandTotalCents"`
	ShippingAddress    string              `json:"shippingAddress"`
	BillingAddress     string              `json:"billingAddress"`
	PaymentMethod      string              `json:"paymentMethod"`
	Status             string              `json:"status"`
	CancellationReason *string             `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time          `json:"cancelledAt,omitempty"`
	ReturnReason       *string             `json:"returnReason,omitempty"`
	ReturnedAt         *time.Time          `json:"returnedAt,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	Version            int64               `json:"version"`
}

// LineItemResponse is the wire representation of one purchased item.
type LineItemResponse struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// ProductResponse is the wire representation of one catalog product.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// orderResponseFromView maps a read-model view to the wire format.
func orderResponseFromView(view queries.OrderView) OrderResponse {
	items := make([]LineItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, LineItemResponse{
			ProductID:      item.ProductID.String(),
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			SubtotalCents:  item.SubtotalCents,
		})
	}

	return OrderResponse{
		ID: view.ID.String(),
		Customer: CustomerPayload{
			Name:  view.CustomerName,
			Email: view.CustomerEmail,
			Phone: view.CustomerPhone,
		},
		Items:              items,
		SubtotalCents:      view.SubtotalCents,
		ShippingCostCents:  view.ShippingCostCents,
		TaxAmountCents:     view.TaxAmountCents,
		ServiceFeeCents:    view.ServiceFeeCents,
		GrandTotalCents:    view.GrandTotalCents,
		ShippingAddress:    view.ShippingAddress,
		BillingAddress:     view.BillingAddress,
		PaymentMethod:      view.PaymentMethod,
		Status:             view.Status,
		CancellationReason: view.CancellationReason,
		CancelledAt:        view.CancelledAt,
		ReturnReason:       view.ReturnReason,
		ReturnedAt:         view.ReturnedAt,
		CreatedAt:          view.CreatedAt,
		Version:            view.Version,
	}
}

// orderResponseFromDomain maps an aggregate to the wire format.
// Used by the mutation endpoints that return the updated record.
func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemResponse{
			ProductID:      item.ProductID().String(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
			SubtotalCents:  item.Subtotal().Cents(),
		})
	}

	var cancellationReason *string
	if reason := aggregate.CancellationReason(); reason != "" {
		cancellationReason = &reason
	}
	var returnReason *string
	if reason := aggregate.ReturnReason(); reason != "" {
		returnReason = &reason
	}

	return OrderResponse{
		ID: aggregate.ID().String(),
		Customer: CustomerPayload{
			Name:  aggregate.Customer().Name(),
			Email: aggregate.Customer().Email(),
			Phone: aggregate.Customer().Phone(),
		},
		Items:              items,
		SubtotalCents:      aggregate.Subtotal().Cents(),
		ShippingCostCents:  aggregate.ShippingCost().Cents(),
		TaxAmountCents:     aggregate.TaxAmount().Cents(),
		ServiceFeeCents:    aggregate.ServiceFee().Cents(),
		GrandTotalCents:    aggregate.GrandTotal().Cents(),
		ShippingAddress:    aggregate.ShippingAddress(),
		BillingAddress:     aggregate.BillingAddress(),
		PaymentMethod:      aggregate.PaymentMethod(),
		Status:             aggregate.Status().String(),
		CancellationReason: cancellationReason,
		CancelledAt:        aggregate.CancelledAt(),
		ReturnReason:       returnReason,
		ReturnedAt:         aggregate.ReturnedAt(),
		CreatedAt:          aggregate.CreatedAt(),
		Version:            aggregate.Version(),
	}
}

func productResponseFromView(view queries.ProductView) ProductResponse {
	return ProductResponse{
		ID:          view.ID.String(),
		Name:        view.Name,
		Description: view.Description,
		PriceCents:  view.PriceCents,
		Stock:       view.Stock,
		CreatedAt:   view.CreatedAt,
	}
}
