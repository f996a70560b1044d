package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-relay/internal/domain/model"
	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
)

const (
	MessageEndpointNotFound = "Endpoint not found"
	MessageMethodNotAllowed = "Method not allowed"
	MessageInternalError    = "Internal server error"
)

// SetupErrorHandling recovers panics and renders every unhandled error as {"error": message}.
func SetupErrorHandling(e *echo.Echo) {
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisablePrintStack: true,
	}))
	e.HTTPErrorHandler = HTTPErrorHandler
}

// HTTPErrorHandler maps routing errors to their JSON bodies and hides everything else behind a 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := MessageInternalError

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		switch {
		case status == http.StatusNotFound:
			message = MessageEndpointNotFound
		case status == http.StatusMethodNotAllowed:
			message = MessageMethodNotAllowed
		case status < http.StatusInternalServerError:
			message = fmt.Sprint(httpErr.Message)
		}
	}

	if status >= http.StatusInternalServerError {
		log.Error(msg.GetMessage("app.unhandled-error", err), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, model.ErrorResponse{Error: message})
	}
	if err != nil {
		log.Error("failed to write error response", zap.Error(err))
	}
}
