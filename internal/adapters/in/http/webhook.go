package http

import (
	"io"
	"net/http"

	"laundry/internal/adapters/out/paymob"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PaymentWebhook handles POST /api/v1/payments/webhook - the Paymob
// transaction callback.
//
// The raw body is kept byte-for-byte for signature verification; parsing only
// extracts the settlement fields. Callbacks that carry no settlement (wrong
// type, still pending) are acknowledged without touching any state, so the
// gateway stops redelivering them.
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "Failed to read request body")
	}

	signature := ctx.QueryParam("hmac")
	if signature == "" {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing hmac parameter",
		})
	}

	callback, err := paymob.ParseCallback(payload)
	if err != nil {
		return badRequest(ctx, "Malformed callback payload")
	}

	if callback.Type != "TRANSACTION" || callback.Obj.Pending {
		return ctx.NoContent(http.StatusOK)
	}

	paymentID, err := kernel.UUIDFromString(callback.Obj.Order.MerchantOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid merchant order id")
	}

	cmd, err := commands.NewProcessPaymentWebhookCommand(
		payload, signature, paymentID, callback.Obj.Success, callback.Obj.ID.String(),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.processWebhookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
