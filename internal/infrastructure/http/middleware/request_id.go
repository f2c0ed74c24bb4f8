package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestIDKey is the Echo context key holding the request ID
const RequestIDKey = "request_id"

// RequestID keeps an incoming X-Request-ID or generates a UUID, echoes it in
// the response and stores it in the Echo context
func RequestID() echo.MiddlewareFunc {
	return echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set(RequestIDKey, id)
		},
	})
}

// GetRequestID returns the ID assigned by RequestID
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
