package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the open-orders board from the
// database: Confirmed orders with no driver, joined to their time slot for
// the display name. Uses direct SQL for read performance in the CQRS pattern.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for open-order queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all confirmed, unassigned orders.
// Results are sorted by scheduled date so the most urgent jobs come first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.scheduled_date,
			ts.name,
			o.pickup_address,
			o.delivery_address,
			o.total_price_amount,
			o.total_price_currency
		FROM orders o
		JOIN time_slots ts ON ts.id = o.time_slot_id
		WHERE o.status = ? AND o.driver_id IS NULL
		ORDER BY o.scheduled_date, o.id
	`, int(order.Confirmed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAvailableOrdersQueryResponse
		var id uuid.UUID
		var amount int64
		var currency string

		err = rows.Scan(
			&id,
			&orderResp.ScheduledDate,
			&orderResp.TimeSlotName,
			&orderResp.PickupAddress,
			&orderResp.DeliveryAddress,
			&amount,
			&currency,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		totalPrice, priceErr := kernel.NewMoney(amount, currency)
		if priceErr != nil {
			return nil, priceErr
		}
		orderResp.TotalPrice = totalPrice

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
