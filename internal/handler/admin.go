package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/middleware"
	"github.com/mzali/radio-booking/internal/session"
)

// Tabs of the admin shell.  The shell is a plain container switching
// between the reference managers and the calendar; the active tab is the
// only state it owns.
const (
	TabClassnames = "classnames"
	TabProducers  = "producers"
	TabCalendar   = "calendar"
)

var adminTabs = map[string]bool{
	TabClassnames: true,
	TabProducers:  true,
	TabCalendar:   true,
}

// AdminHandler keeps each admin's active tab across requests, keyed by
// identity subject.
type AdminHandler struct {
	Sessions session.Store
}

type adminView struct {
	Tab string `json:"tab"`
}

func adminKey(subject string) string { return "admin:" + subject }

// GetView returns the caller's active tab, defaulting to the class-name
// manager.
func (h *AdminHandler) GetView(c echo.Context) error {
	var v adminView
	err := h.Sessions.Get(c.Request().Context(), adminKey(middleware.IdentityFrom(c).Subject), &v)
	if errors.Is(err, session.ErrNotFound) || v.Tab == "" {
		v.Tab = TabClassnames
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load view"})
	}
	return c.JSON(http.StatusOK, v)
}

// SetView switches the active tab.
func (h *AdminHandler) SetView(c echo.Context) error {
	var v adminView
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !adminTabs[v.Tab] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown tab"})
	}
	if err := h.Sessions.Put(c.Request().Context(), adminKey(middleware.IdentityFrom(c).Subject), v); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store view"})
	}
	return c.JSON(http.StatusOK, v)
}
