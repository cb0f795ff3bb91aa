package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a value object holding the buyer identity attached to an order.
// Name and email are required; phone is optional. Customer is immutable.
type Customer struct {
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with validation.
// Name and email must be non-blank; email must contain an "@".
func NewCustomer(name, email, phone string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("customer email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	c.phone = phone
	return nil
}
