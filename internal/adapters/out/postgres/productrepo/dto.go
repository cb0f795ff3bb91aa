// Package productrepo provides data transfer objects and mapping functions for
// catalog product persistence.
package productrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	PriceCents  int64
	Stock       int
	CreatedAt   time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		PriceCents:  aggregate.Price().Cents(),
		Stock:       aggregate.Stock(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, price, dto.Stock, dto.CreatedAt)
}
