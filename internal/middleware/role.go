package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireWrite aborts the request with 403 unless the caller's resolved
// role carries write access (admin or editor).  The gate is advisory —
// the remote store does its own last-write-wins thing regardless — but it
// keeps read-only callers out of every mutation route.  It assumes
// JWTAuth ran earlier on the chain.
func RequireWrite() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !AccessFrom(c).CanWrite {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
