// Package handler implements the HTTP endpoints: the calendar surface and
// its sidebar actions, the reference-data managers, the admin shell tab
// state and the identity echo.  Handlers translate state-machine errors
// into JSON responses and never mutate state on a failed call.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/calendar"
	"github.com/mzali/radio-booking/internal/repository"
)

// errNoSession is returned when a request carries no usable calendar
// session id.
var errNoSession = errors.New("no open calendar session")

// fail maps an error from the state machine or the remote layer onto the
// matching HTTP response.  Validation and conflict failures are
// user-facing messages; remote failures collapse to a generic alert so
// internals do not leak to the browser.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errNoSession):
		return c.JSON(http.StatusNotFound, map[string]string{"error": errNoSession.Error()})
	case errors.Is(err, auth.ErrAuthUnavailable):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication unavailable"})
	case errors.Is(err, calendar.ErrReadOnly):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, calendar.ErrSlotTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": "There is already an event for this time slot on this day."})
	case errors.Is(err, calendar.ErrNoDraft):
		return c.JSON(http.StatusConflict, map[string]string{"error": calendar.ErrNoDraft.Error()})
	case errors.Is(err, calendar.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	var re *repository.RemoteError
	if errors.As(err, &re) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": re.Error()})
	}
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "remote operation failed"})
}
