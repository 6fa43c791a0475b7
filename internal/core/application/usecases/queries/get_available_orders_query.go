// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves paid orders that have no driver yet.
// This is the list drivers browse when deciding what to apply for.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the open-orders board.
// This is a parameterless query that fetches all confirmed, unassigned orders.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is one row on the open-orders board:
// enough for a driver to judge the job without loading the full aggregate.
type GetAvailableOrdersQueryResponse struct {
	ID              kernel.UUID
	ScheduledDate   time.Time
	TimeSlotName    string
	PickupAddress   string
	DeliveryAddress string
	TotalPrice      kernel.Money
}
