package http

import (
	"errors"
	"net/http"

	"shipflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPersistenceFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = "Shipment store is unavailable, retry later"
	case http.StatusInternalServerError:
		message = "Internal server error"
	}
	if status >= http.StatusInternalServerError {
		ctx.Logger().Error(err)
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// errorHandler renders errors returned by routing, binding and middleware in
// the same shape as handler errors.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = writeError(ctx, err)
		return
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		message = m
	}
	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(he.Code)
		return
	}
	_ = ctx.JSON(he.Code, Error{Code: he.Code, Message: message})
}
