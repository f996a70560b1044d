package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// SetupCORS adds permissive CORS headers to every response, including errors and requests without an Origin.
func SetupCORS(e *echo.Echo) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, corsAllowOrigin)
			header.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
			header.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
			return next(c)
		}
	})
}
