package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object representing a single purchased product inside an
// order: a product reference, a display name, a quantity and the unit price at
// purchase time. Line items are immutable once the order is created.
type LineItem struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem with validation.
// The product ID must be valid, the name non-blank and the quantity positive.
func NewLineItem(productID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product name captured at purchase time.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the purchased quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price captured at purchase time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.MultiplyBy(li.quantity)
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	li.unitPrice = unitPrice
	return nil
}
