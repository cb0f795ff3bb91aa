package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// Amounts are stored as integer cents to avoid floating-point rounding in
// order totals. Money is immutable; arithmetic methods return new values.
//
// The zero value represents zero cents and is valid, so computed totals can
// start from Money{} and be accumulated with Add.
//
// Example usage:
//
//	price, err := kernel.NewMoney(1999) // $19.99
//	if err != nil {
//	    // handle error
//	}
//	total := price.MultiplyBy(3).Add(shipping)
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount multiplied by a non-negative factor.
// Negative factors are treated as zero; quantities are validated upstream.
func (m Money) MultiplyBy(factor int) Money {
	if factor < 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(factor)}
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as a decimal dollar string, e.g. "19.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
