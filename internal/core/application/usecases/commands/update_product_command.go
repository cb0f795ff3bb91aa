package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a request to replace a product's mutable
// catalog fields.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID, name, description string, price kernel.Money, stock int,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setStock(stock),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new product description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new list price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the new stock level.
func (c UpdateProductCommand) Stock() int {
	return c.stock
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock is negative")
	}

	c.stock = stock
	return nil
}
