package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Liveness serves the static liveness payload for / and /health.
func Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
