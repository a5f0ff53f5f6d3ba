// Package middleware provides shared request processing: bearer token
// verification, role gating and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/model"
)

// identityKey is the Echo context key holding the caller's model.Identity.
const identityKey = "identity"

// JWTAuth returns middleware that validates the Authorization bearer token
// issued by the identity provider and exposes the caller to downstream
// handlers in two ways: the parsed identity (subject + raw role claim) in
// the Echo context, and the raw token in the request context so remote
// collection calls made while serving the request can forward it.  The
// secret must match the provider's signing key.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid claims"})
			}

			ident := model.Identity{}
			if sub, ok := claims["sub"].(string); ok {
				ident.Subject = sub
			}
			// The role is a profile attribute copied onto the token. It
			// is untrusted input; auth.Resolve narrows it to the known set.
			if role, ok := claims["role"].(string); ok {
				ident.Role = role
			}
			c.Set(identityKey, ident)
			c.SetRequest(c.Request().WithContext(auth.WithBearer(c.Request().Context(), raw)))
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by JWTAuth, or the zero
// identity when the route was not authenticated.
func IdentityFrom(c echo.Context) model.Identity {
	if id, ok := c.Get(identityKey).(model.Identity); ok {
		return id
	}
	return model.Identity{}
}

// AccessFrom resolves the caller's capability set.  Resolution happens per
// request; nothing is cached between requests.
func AccessFrom(c echo.Context) auth.Access {
	return auth.Resolve(IdentityFrom(c))
}
