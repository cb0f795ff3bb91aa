package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// DeleteProductCommand represents a request to remove a product from the
// catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove a catalog product.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	productCommand := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productCommand.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
