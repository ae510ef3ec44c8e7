package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = "86400"
)

// CORSConfig holds the comma-separated origin allow-list, already split.
type CORSConfig struct {
	AllowedOrigins []string
}

func NewCORSConfig(origins string) CORSConfig {
	parts := strings.Split(origins, ",")
	allowed := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			allowed = append(allowed, trimmed)
		}
	}
	return CORSConfig{AllowedOrigins: allowed}
}

// resolveOrigin echoes the request origin when it is allow-listed (or the
// list holds a wildcard); otherwise it falls back to the first allowed origin.
func (cfg CORSConfig) resolveOrigin(origin string) string {
	for _, allowed := range cfg.AllowedOrigins {
		if allowed == "*" || (origin != "" && allowed == origin) {
			if origin != "" {
				return origin
			}
			return "*"
		}
	}
	if len(cfg.AllowedOrigins) > 0 {
		return cfg.AllowedOrigins[0]
	}
	return "*"
}

// CORS answers OPTIONS preflights with an immediate 204 and injects the CORS
// headers into every other response. Headers are set before the handler runs
// so they are present on error responses as well.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, cfg.resolveOrigin(origin))
			header.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
			header.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)

			if c.Request().Method == http.MethodOptions {
				header.Set(echo.HeaderAccessControlMaxAge, corsMaxAge)
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
