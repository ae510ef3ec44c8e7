package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger records timestamp, method, and path for every request.
// The line format is fixed; no other fields are logged.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log.Printf("[%s] %s %s",
				time.Now().UTC().Format(time.RFC3339),
				c.Request().Method,
				c.Request().URL.Path,
			)
			return next(c)
		}
	}
}
