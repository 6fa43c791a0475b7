package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderApplicationsQueryIsNotConstructed = errors.New(
		"GetOrderApplicationsQuery must be created via NewGetOrderApplicationsQuery constructor",
	)
)

// GetOrderApplicationsQuery retrieves all driver applications for one order,
// the list an admin reviews before accepting a winner.
type GetOrderApplicationsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderApplicationsQuery creates a query for the order's application list.
func NewGetOrderApplicationsQuery(orderID kernel.UUID) (GetOrderApplicationsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderApplicationsQuery{}, err
	}

	return GetOrderApplicationsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose applications are requested.
func (q GetOrderApplicationsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderApplicationsQueryIsNotConstructed if validation fails.
func (q GetOrderApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderApplicationsQueryIsNotConstructed)
}

// GetOrderApplicationsQueryResponse is one application row joined with the
// applying driver's profile, enough to pick a winner without a second lookup.
type GetOrderApplicationsQueryResponse struct {
	ID            kernel.UUID
	DriverID      kernel.UUID
	DriverName    string
	DriverPhone   string
	DriverVehicle string
	DriverRating  float64
	Status        application.Status
	AppliedAt     time.Time
}
