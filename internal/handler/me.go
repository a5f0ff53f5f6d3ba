package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/middleware"
)

// meResponse echoes the caller's identity with the capability set resolved
// from the token's role attribute.  The header chrome uses it to show
// "(Admin)" style badges.
type meResponse struct {
	Subject string `json:"subject"`
	auth.Access
}

// Me returns the authenticated caller's subject and resolved role.
func Me(c echo.Context) error {
	return c.JSON(http.StatusOK, meResponse{
		Subject: middleware.IdentityFrom(c).Subject,
		Access:  middleware.AccessFrom(c),
	})
}
