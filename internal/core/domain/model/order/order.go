package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer purchase in the storefront. It is the aggregate
// root that manages the order lifecycle from placement through dispatch and
// delivery to receipt, return or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid customer
//   - Must contain at least one valid line item
//   - Line items, totals, addresses and payment method are immutable after creation
//   - Status transitions follow the fixed graph enforced by Status
//   - Cancellation annotations are only set by Cancel; return annotations only
//     by MarkReturned
//   - Every successful mutation increments the version used for optimistic
//     concurrency in the persistence layer
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id       kernel.UUID
	customer Customer
	items    []LineItem

	subtotal     kernel.Money
	shippingCost kernel.Money
	taxAmount    kernel.Money
	serviceFee   kernel.Money
	grandTotal   kernel.Money

	shippingAddress string
	billingAddress  string
	paymentMethod   string

	status             Status
	cancellationReason string
	cancelledAt        *time.Time
	returnReason       string
	returnedAt         *time.Time

	createdAt time.Time
	version   int64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation. This is the
// only way to place a valid order, ensuring all business invariants hold.
//
// The subtotal is computed from the line items and the grand total as
// subtotal + shipping + tax + fee. When billingAddress is blank it defaults to
// the shipping address. The order starts at version 1.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	shippingCost, taxAmount, serviceFee kernel.Money,
	shippingAddress, billingAddress, paymentMethod string,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	order.shippingCost = shippingCost
	order.taxAmount = taxAmount
	order.serviceFee = serviceFee
	order.billingAddress = billingAddress
	if strings.TrimSpace(billingAddress) == "" {
		order.billingAddress = shippingAddress
	}

	order.recomputeTotals()

	return order, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction by the persistence layer.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Customer           Customer
	Items              []LineItem
	ShippingCost       kernel.Money
	TaxAmount          kernel.Money
	ServiceFee         kernel.Money
	ShippingAddress    string
	BillingAddress     string
	PaymentMethod      string
	Status             Status
	CancellationReason string
	CancelledAt        *time.Time
	ReturnReason       string
	ReturnedAt         *time.Time
	CreatedAt          time.Time
	Version            int64
}

// RestoreOrder reconstructs an Order from persisted state. Core invariants
// (identity, customer, items, status, version) are re-validated so corrupt
// rows cannot produce an invalid aggregate. Totals are recomputed from the
// line items rather than trusted from storage.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		createdAt:          params.CreatedAt,
		isConstructed:      true,
		cancellationReason: params.CancellationReason,
		cancelledAt:        params.CancelledAt,
		returnReason:       params.ReturnReason,
		returnedAt:         params.ReturnedAt,
		shippingCost:       params.ShippingCost,
		taxAmount:          params.TaxAmount,
		serviceFee:         params.ServiceFee,
		billingAddress:     params.BillingAddress,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setCustomer(params.Customer),
		order.setItems(params.Items),
		order.setShippingAddress(params.ShippingAddress),
		order.setPaymentMethod(params.PaymentMethod),
		order.setStatus(params.Status),
		order.setVersion(params.Version),
	); err != nil {
		return nil, err
	}

	order.recomputeTotals()

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the buyer identity attached to the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items. The copy keeps the
// aggregate's internal slice immutable from the outside.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of all line item subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// ShippingCost returns the shipping charge.
func (o *Order) ShippingCost() kernel.Money {
	return o.shippingCost
}

// TaxAmount returns the tax charge.
func (o *Order) TaxAmount() kernel.Money {
	return o.taxAmount
}

// ServiceFee returns the service fee charge.
func (o *Order) ServiceFee() kernel.Money {
	return o.serviceFee
}

// GrandTotal returns subtotal + shipping + tax + fee.
func (o *Order) GrandTotal() kernel.Money {
	return o.grandTotal
}

// ShippingAddress returns the free-text shipping address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// BillingAddress returns the free-text billing address.
func (o *Order) BillingAddress() string {
	return o.billingAddress
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CancellationReason returns the reason recorded by Cancel, or "" when the
// order was never cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// CancelledAt returns the cancellation timestamp, or nil when the order was
// never cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// ReturnReason returns the reason recorded by MarkReturned, or "" when the
// order was never returned.
func (o *Order) ReturnReason() string {
	return o.returnReason
}

// ReturnedAt returns the return timestamp, or nil when the order was never
// returned.
func (o *Order) ReturnedAt() *time.Time {
	return o.returnedAt
}

// CreatedAt returns the order placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency version. It starts at 1 and is
// incremented by every successful mutation.
func (o *Order) Version() int64 {
	return o.version
}

// ChangeStatus moves the order to target when the transition is legal.
//
// This is the generic transition used by the status-update endpoint: it only
// changes the status field and never records cancellation or return
// annotations. Use Cancel or MarkReturned for the annotated paths.
//
// Returns an error naming both states when the transition is not permitted by
// the transition table.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.version++
	return nil
}

// Cancel cancels a pending order, recording the reason and the cancellation
// timestamp.
//
// Business rules:
//   - The order must be in pending status
//   - The reason must be non-blank
//
// Returns an error when either rule is violated; the order is left unchanged.
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("only pending orders can be cancelled, order is %s", o.status),
		)
	}

	now := time.Now().UTC()
	o.status = Cancelled
	o.cancellationReason = reason
	o.cancelledAt = &now
	o.version++
	return nil
}

// MarkReturned returns a delivered or received order, recording the reason
// and the return timestamp.
//
// Business rules:
//   - The order must be in delivered or received status
//   - The reason must be non-blank
//
// Returns an error when either rule is violated; the order is left unchanged.
func (o *Order) MarkReturned(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("return reason")
	}

	if o.status != Delivered && o.status != Received {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("only delivered or received orders can be returned, order is %s", o.status),
		)
	}

	now := time.Now().UTC()
	o.status = Returned
	o.returnReason = reason
	o.returnedAt = &now
	o.version++
	return nil
}

// recomputeTotals derives subtotal and grand total from the line items and
// the fixed charges.
func (o *Order) recomputeTotals() {
	subtotal := kernel.Money{}
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	o.subtotal = subtotal
	o.grandTotal = subtotal.Add(o.shippingCost).Add(o.taxAmount).Add(o.serviceFee)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}
	o.version = version
	return nil
}
