package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"userbase/internal/common"
	"userbase/internal/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the single outermost catch: every error that escapes a
// handler or middleware is converted to the error envelope here. Tagged
// application errors are matched on their kind, never on message text.
func ErrorHandler(appEnv string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *common.Error
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case common.KindValidation:
				_ = response.Error(c, http.StatusUnprocessableEntity, appErr.Message, nil)
			case common.KindConflict:
				_ = response.Error(c, http.StatusConflict, appErr.Message, nil)
			case common.KindNotFound:
				_ = response.Error(c, http.StatusNotFound, appErr.Message, nil)
			case common.KindUnauthorized:
				_ = response.Error(c, http.StatusUnauthorized, appErr.Message, nil)
			default:
				_ = response.Error(c, http.StatusInternalServerError, internalMessage(appEnv, appErr.Message), nil)
			}
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message := fmt.Sprintf("%v", httpErr.Message)
			if httpErr.Code == http.StatusNotFound {
				message = "Route not found"
			}
			_ = response.Error(c, httpErr.Code, message, nil)
			return
		}

		log.Printf("Error: %v", err)
		_ = response.Error(c, http.StatusInternalServerError, internalMessage(appEnv, err.Error()), nil)
	}
}

// internalMessage suppresses internal detail outside non-production mode.
func internalMessage(appEnv, message string) string {
	if appEnv == "production" {
		return "Internal server error"
	}
	return message
}
