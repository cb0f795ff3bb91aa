package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand represents a maintenance request to cancel all
// pending orders older than the given age. Issued by the background job.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
// The age threshold must be positive.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setMaxAge(maxAge); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns the age beyond which a pending order is considered stale.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidError("max age must be positive")
	}

	c.maxAge = maxAge
	return nil
}
