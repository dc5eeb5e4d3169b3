package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/metacore/lims/internal/platform/apperr"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Middleware authenticates the Authorization: Bearer header and injects
// the resolved claims into the request context before dispatch.
func Middleware(signer *Signer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return apperr.Auth("Token is missing")
			}

			claims, err := signer.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return err
			}

			ctx := context.WithValue(c.Request().Context(), claimsKey, claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims attached by Middleware, or nil
// on unauthenticated requests.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}
