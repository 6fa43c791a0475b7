package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/timeslot"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// mapCommandError translates command handler errors into HTTP responses.
// Business rule conflicts are 409, missing aggregates 404, bad input 400 and
// unauthenticated webhooks 401; anything unrecognized is a 500.
func mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)

	case errors.Is(err, commands.ErrWebhookSignatureInvalid):
		return respond(ctx, http.StatusUnauthorized, err)

	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, timeslot.ErrTimeSlotFull),
		errors.Is(err, timeslot.ErrTimeSlotInactive),
		errors.Is(err, order.ErrOrderInFinalState),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, driver.ErrDriverNotAvailable),
		errors.Is(err, driver.ErrInvalidDriverTransition),
		errors.Is(err, application.ErrApplicationAlreadyDecided),
		errors.Is(err, application.ErrRejectionCooldownActive),
		errors.Is(err, commands.ErrDriverAlreadyApplied):
		return respond(ctx, http.StatusConflict, err)

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
