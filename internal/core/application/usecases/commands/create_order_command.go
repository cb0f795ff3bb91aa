package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new storefront order.
// Encapsulates the customer identity, the purchased line items, the fixed
// charges and the shipping/payment details.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customer, items,
//	    shipping, tax, fee, "1 Main Street", "", "credit_card")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        order.Customer
	items           []order.LineItem
	shippingCost    kernel.Money
	taxAmount       kernel.Money
	serviceFee      kernel.Money
	shippingAddress string
	billingAddress  string
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identity, customer, items and the required shipping/payment
// fields; the domain aggregate re-checks the same invariants on construction.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	items []order.LineItem,
	shippingCost, taxAmount, serviceFee kernel.Money,
	shippingAddress, billingAddress, paymentMethod string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		shippingCost:   shippingCost,
		taxAmount:      taxAmount,
		serviceFee:     serviceFee,
		billingAddress: billingAddress,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomer(customer),
		orderCommand.setItems(items),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the buyer identity for the new order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the purchased line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// ShippingCost returns the shipping charge.
func (c CreateOrderCommand) ShippingCost() kernel.Money {
	return c.shippingCost
}

// TaxAmount returns the tax charge.
func (c CreateOrderCommand) TaxAmount() kernel.Money {
	return c.taxAmount
}

// ServiceFee returns the service fee charge.
func (c CreateOrderCommand) ServiceFee() kernel.Money {
	return c.serviceFee
}

// ShippingAddress returns the free-text shipping address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// BillingAddress returns the free-text billing address, possibly empty.
func (c CreateOrderCommand) BillingAddress() string {
	return c.billingAddress
}

// PaymentMethod returns the payment method label.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}

	c.shippingAddress = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	c.paymentMethod = method
	return nil
}
