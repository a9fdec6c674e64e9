package http

import (
	"errors"
	"net/http"

	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/generated/servers"
	"mozdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto HTTP status codes. Conflicts are checked before
// generic validation failures since they wrap errs.ErrValueIsInvalid as well.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrTransitionNotAllowed),
		errors.Is(err, order.ErrDeliveryRequiresCode),
		errors.Is(err, order.ErrDriverMismatch):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Internal failures only expose message.
func fail(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(message, ": ", err)
		return ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message + ": " + err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
