package http

import (
	"fmt"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator hook so
// request DTOs are checked right after binding.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for all request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// LocationRequest is a geographic point with its display address.
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Address   string  `json:"address" validate:"required"`
}

// ItemRequest is one requested service line.
type ItemRequest struct {
	ServiceID   string `json:"service_id" validate:"required,uuid"`
	ServiceName string `json:"service_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" validate:"required,min=1"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required,uuid"`
	TimeSlotID    string          `json:"time_slot_id" validate:"required,uuid"`
	ScheduledDate string          `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Pickup        LocationRequest `json:"pickup" validate:"required"`
	Delivery      LocationRequest `json:"delivery" validate:"required"`
	Items         []ItemRequest   `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash card wallet"`
	Currency      string          `json:"currency" validate:"omitempty,len=3"`
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:orderID/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:orderID/assign.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// ApplyToOrderRequest is the body of POST /api/v1/orders/:orderID/applications.
type ApplyToOrderRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// paymentMethodFromString maps the wire name of a payment method to its
// domain value.
func paymentMethodFromString(method string) (payment.Method, error) {
	switch method {
	case "cash":
		return payment.MethodCash, nil
	case "card":
		return payment.MethodCard, nil
	case "wallet":
		return payment.MethodWallet, nil
	default:
		return 0, fmt.Errorf("unknown payment method %q", method)
	}
}

// orderStatusFromString maps the wire name of an order status to its domain
// value. Unknown is deliberately unreachable from the API.
func orderStatusFromString(status string) (order.Status, error) {
	statuses := map[string]order.Status{
		"Requested":      order.Requested,
		"Confirmed":      order.Confirmed,
		"DriverAssigned": order.DriverAssigned,
		"PickedUp":       order.PickedUp,
		"InCleaning":     order.InCleaning,
		"OutForDelivery": order.OutForDelivery,
		"Delivered":      order.Delivered,
		"Cancelled":      order.Cancelled,
		"PaymentFailed":  order.PaymentFailed,
	}

	parsed, ok := statuses[status]
	if !ok {
		return 0, fmt.Errorf("unknown order status %q", status)
	}
	return parsed, nil
}
