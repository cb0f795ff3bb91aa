package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllProductsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllProductsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllProductsQueryIsNotConstructed)
}

func TestNewGetProductQuery_Valid(t *testing.T) {
	productID := kernel.NewUUID()

	query, err := queries.NewGetProductQuery(productID)

	require.NoError(t, err)
	assert.Equal(t, productID, query.ProductID())
	require.NoError(t, query.Validate())
}

func TestNewGetProductQuery_EmptyID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetProductQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetProductQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProductQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProductQueryIsNotConstructed)
}
