// Package product provides the Product aggregate for the storefront catalog.
// Products carry no lifecycle state machine; they are plain catalog records
// with validated identity, pricing and stock.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product represents a catalog entry available for purchase.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a Product with validation.
// The name must be non-blank and the stock non-negative.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, stock int) (*Product, error) {
	p := &Product{
		description:   description,
		price:         price,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(
	id kernel.UUID, name, description string, price kernel.Money, stock int, createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, description, price, stock)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current list price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the units available.
func (p *Product) Stock() int {
	return p.stock
}

// CreatedAt returns the catalog entry creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ChangeDetails updates the mutable catalog fields with validation.
func (p *Product) ChangeDetails(name, description string, price kernel.Money, stock int) error {
	updated := *p
	if err := errors.Join(
		updated.setName(name),
		updated.setStock(stock),
	); err != nil {
		return err
	}

	updated.description = description
	updated.price = price
	*p = updated
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}
