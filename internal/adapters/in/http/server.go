// Package http exposes the marketplace operations over a REST API built on
// echo. Handlers translate requests into commands and queries; all business
// rules live behind them.
package http

import (
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	applyToOrderHandler      commands.ApplyToOrderCommandHandler
	acceptApplicationHandler commands.AcceptApplicationCommandHandler
	processWebhookHandler    commands.ProcessPaymentWebhookCommandHandler

	// Query handlers
	getAvailableOrdersHandler   queries.GetAvailableOrdersQueryHandler
	getOrderApplicationsHandler queries.GetOrderApplicationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	applyToOrderHandler commands.ApplyToOrderCommandHandler,
	acceptApplicationHandler commands.AcceptApplicationCommandHandler,
	processWebhookHandler commands.ProcessPaymentWebhookCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getOrderApplicationsHandler queries.GetOrderApplicationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignDriverHandler:         assignDriverHandler,
		applyToOrderHandler:         applyToOrderHandler,
		acceptApplicationHandler:    acceptApplicationHandler,
		processWebhookHandler:       processWebhookHandler,
		getAvailableOrdersHandler:   getAvailableOrdersHandler,
		getOrderApplicationsHandler: getOrderApplicationsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/assign", s.AssignDriver)
	api.POST("/orders/:orderID/applications", s.ApplyToOrder)
	api.GET("/orders/:orderID/applications", s.GetOrderApplications)
	api.POST("/applications/:applicationID/accept", s.AcceptApplication)
	api.POST("/payments/webhook", s.PaymentWebhook)
}

// CreateOrder handles POST /api/v1/orders - places a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	timeSlotID, err := kernel.UUIDFromString(request.TimeSlotID)
	if err != nil {
		return badRequest(ctx, "Invalid time slot id")
	}
	scheduledDate, err := time.ParseInLocation("2006-01-02", request.ScheduledDate, time.UTC)
	if err != nil {
		return badRequest(ctx, "Invalid scheduled date")
	}
	pickupLocation, err := kernel.NewLocation(request.Pickup.Latitude, request.Pickup.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid pickup location: "+err.Error())
	}
	deliveryLocation, err := kernel.NewLocation(request.Delivery.Latitude, request.Delivery.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid delivery location: "+err.Error())
	}
	method, err := paymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]commands.ItemData, len(request.Items))
	for i, item := range request.Items {
		serviceID, idErr := kernel.UUIDFromString(item.ServiceID)
		if idErr != nil {
			return badRequest(ctx, "Invalid service id")
		}
		items[i] = commands.ItemData{
			ServiceID:   serviceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, timeSlotID, scheduledDate,
		pickupLocation, request.Pickup.Address,
		deliveryLocation, request.Delivery.Address,
		items, method, request.Currency,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderID/status - moves the
// order along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	next, err := orderStatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderID/assign - direct driver
// assignment by an admin.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyToOrder handles POST /api/v1/orders/:orderID/applications - a driver
// applies for an open order.
func (s *Server) ApplyToOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ApplyToOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	applicationID := kernel.NewUUID()
	cmd, err := commands.NewApplyToOrderCommand(applicationID, orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.applyToOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": applicationID.String()})
}

// AcceptApplication handles POST /api/v1/applications/:applicationID/accept -
// an admin accepts one application, rejecting the rest.
func (s *Server) AcceptApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("applicationID"))
	if err != nil {
		return badRequest(ctx, "Invalid application id")
	}

	cmd, err := commands.NewAcceptApplicationCommand(applicationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptApplicationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableOrders handles GET /api/v1/orders/available - the open-orders
// board drivers browse.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve available orders",
		})
	}

	type availableOrder struct {
		ID              string `json:"id"`
		ScheduledDate   string `json:"scheduled_date"`
		TimeSlotName    string `json:"time_slot_name"`
		PickupAddress   string `json:"pickup_address"`
		DeliveryAddress string `json:"delivery_address"`
		TotalAmount     int64  `json:"total_amount"`
		Currency        string `json:"currency"`
	}

	response := make([]availableOrder, len(orders))
	for i, o := range orders {
		response[i] = availableOrder{
			ID:              o.ID.String(),
			ScheduledDate:   o.ScheduledDate.Format("2006-01-02"),
			TimeSlotName:    o.TimeSlotName,
			PickupAddress:   o.PickupAddress,
			DeliveryAddress: o.DeliveryAddress,
			TotalAmount:     o.TotalPrice.Amount(),
			Currency:        o.TotalPrice.Currency(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderApplications handles GET /api/v1/orders/:orderID/applications.
func (s *Server) GetOrderApplications(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderApplicationsQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	applications, err := s.getOrderApplicationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve applications",
		})
	}

	type applicationRow struct {
		ID            string  `json:"id"`
		DriverID      string  `json:"driver_id"`
		DriverName    string  `json:"driver_name"`
		DriverPhone   string  `json:"driver_phone"`
		DriverVehicle string  `json:"driver_vehicle"`
		DriverRating  float64 `json:"driver_rating"`
		Status        string  `json:"status"`
		AppliedAt     string  `json:"applied_at"`
	}

	response := make([]applicationRow, len(applications))
	for i, app := range applications {
		response[i] = applicationRow{
			ID:            app.ID.String(),
			DriverID:      app.DriverID.String(),
			DriverName:    app.DriverName,
			DriverPhone:   app.DriverPhone,
			DriverVehicle: app.DriverVehicle,
			DriverRating:  app.DriverRating,
			Status:        app.Status.String(),
			AppliedAt:     app.AppliedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
