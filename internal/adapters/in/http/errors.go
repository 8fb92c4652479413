package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/inflight"

	"github.com/labstack/echo/v4"
)

// Problem is the body of every error response.
type Problem struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func writeProblem(c echo.Context, status int, title, message string) error {
	return c.JSON(status, Problem{Code: status, Title: title, Message: message})
}

// badRequest answers input that could not be turned into a command or query.
func badRequest(c echo.Context, err error) error {
	var missing *booking.MissingInformationError
	if errors.As(err, &missing) {
		return writeProblem(c, http.StatusBadRequest, missing.Title(), missing.Description)
	}
	return writeProblem(c, http.StatusBadRequest, "Invalid Request", err.Error())
}

// fail maps an error returned by a handler. Anything unclassified is a store
// failure and is logged.
func (s *Server) fail(c echo.Context, err error) error {
	var missing *booking.MissingInformationError

	switch {
	case errors.As(err, &missing):
		return writeProblem(c, http.StatusBadRequest, missing.Title(), missing.Description)
	case errors.Is(err, queries.ErrOrderNotFound):
		return writeProblem(c, http.StatusNotFound, "Order Not Found", "No order found with this Laundry ID")
	case errors.Is(err, queries.ErrBookingNotFound):
		return writeProblem(c, http.StatusNotFound, "No booking found", "The booking does not exist")
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeProblem(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, commands.ErrBookingIsNotOwned):
		return writeProblem(c, http.StatusForbidden, "Forbidden", "The booking belongs to another user")
	case errors.Is(err, inflight.ErrRequestInFlight):
		return writeProblem(c, http.StatusConflict, "Request In Progress", "This order is already being updated")
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return writeProblem(c, http.StatusConflict, "Conflict", "The order was changed by someone else, reload and retry")
	case errors.Is(err, batch.ErrBatchIsClosed),
		errors.Is(err, batch.ErrWashTypeMismatch),
		errors.Is(err, order.ErrOrderIsDelivered):
		return writeProblem(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", err.Error())
	}

	s.logger.ErrorContext(c.Request().Context(), "Request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err)
	return writeProblem(c, http.StatusInternalServerError, "Internal Error", "Something went wrong, please try again")
}

// failTransition treats an invalid value raised while applying a status
// change as a conflict with the current state.
func (s *Server) failTransition(c echo.Context, err error) error {
	if errors.Is(err, errs.ErrValueIsInvalid) && !errors.Is(err, errs.ErrObjectNotFound) {
		return writeProblem(c, http.StatusConflict, "Invalid Transition", err.Error())
	}
	return s.fail(c, err)
}
