package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerAuth guards admin routes with a static bearer token.
// When no token is configured every admin request is rejected.
func BearerAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if token == "" {
				return unauthorized(ctx, "Admin API is disabled")
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return unauthorized(ctx, "Missing bearer token")
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return unauthorized(ctx, "Invalid bearer token")
			}

			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
