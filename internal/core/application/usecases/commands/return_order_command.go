package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrReturnOrderCommandIsNotConstructed = errors.New(
		"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
	)
)

// ReturnOrderCommand represents a customer's request to return an order that
// has been delivered or received, with the mandatory return reason.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return an order.
// The reason must be non-blank.
func NewReturnOrderCommand(orderID kernel.UUID, reason string) (ReturnOrderCommand, error) {
	returnCommand := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setReason(reason),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to return.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the return reason.
func (c ReturnOrderCommand) Reason() string {
	return c.reason
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnOrderCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("return reason")
	}

	c.reason = reason
	return nil
}
