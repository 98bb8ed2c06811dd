package http

import (
	"errors"
	"net/http"

	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorPayload is the JSON body of every non-2xx response.
type errorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON maps a domain error to its HTTP status. Validation failures
// are the client's fault (400), a missing order is 404, an unreachable
// store 503, anything else 500.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorPayload{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequestJSON(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorPayload{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
