package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"userbase/internal/common"
)

// RequireAuth guards a route group with a bearer JWT signed by the configured
// secret. It is mounted only when auth is enabled; the default deployment
// leaves the API open.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return common.Unauthorized("Unauthorized")
		},
	})
}
