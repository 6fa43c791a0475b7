package queries

import (
	"context"

	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderApplicationsQueryHandler reads the application list for an order,
// joined with driver contact details so the admin reviewing the list never
// needs a second lookup.
type GetOrderApplicationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderApplicationsQueryHandler creates a handler for application list queries.
// Requires a GORM database connection for query execution.
func NewGetOrderApplicationsQueryHandler(db *gorm.DB) GetOrderApplicationsQueryHandler {
	return GetOrderApplicationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's applications, oldest
// first — the order they arrived in.
func (h GetOrderApplicationsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderApplicationsQuery,
) ([]GetOrderApplicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	applications := make([]GetOrderApplicationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.driver_id,
			d.name,
			d.phone,
			d.vehicle,
			d.rating,
			a.status,
			a.applied_at
		FROM applications a
		JOIN drivers d ON d.id = a.driver_id
		WHERE a.order_id = ?
		ORDER BY a.applied_at, a.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var appResp GetOrderApplicationsQueryResponse
		var id, driverID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&driverID,
			&appResp.DriverName,
			&appResp.DriverPhone,
			&appResp.DriverVehicle,
			&appResp.DriverRating,
			&status,
			&appResp.AppliedAt,
		)
		if err != nil {
			return nil, err
		}

		appID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		appResp.ID = appID

		dID, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return nil, idErr
		}
		appResp.DriverID = dID

		appResp.Status = application.Status(status)
		applications = append(applications, appResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
