// Package response builds the fixed JSON envelope every endpoint returns.
package response

import (
	"net/http"

	"userbase/internal/validation"

	"github.com/labstack/echo/v4"
)

type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type ErrorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  validation.Errors `json:"errors,omitempty"`
}

// Success writes the success envelope. Data is always present, even when nil.
func Success(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, SuccessBody{Success: true, Message: message, Data: data})
}

// Error writes the error envelope. The status is caller-supplied, never
// inferred from the body.
func Error(c echo.Context, status int, message string, fieldErrors validation.Errors) error {
	return c.JSON(status, ErrorBody{Success: false, Error: message, Errors: fieldErrors})
}

func NotFound(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(c, http.StatusNotFound, message, nil)
}

func ValidationFailed(c echo.Context, fieldErrors validation.Errors) error {
	return Error(c, http.StatusUnprocessableEntity, "Validation failed", fieldErrors)
}
