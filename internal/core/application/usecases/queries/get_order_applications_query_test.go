package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderApplicationsQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderApplicationsQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderApplicationsQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderApplicationsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderApplicationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderApplicationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderApplicationsQueryIsNotConstructed)
}
