package middleware

import (
	"debt-portal/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where handlers and error responses find the trace id.
	TraceIDContextKey = "trace_id"
)

// RequestID reuses the caller's X-Trace-ID when present and otherwise mints a
// UUID. The id is echoed back, stored on the echo context for error bodies and
// attached to the request context for audit events.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))

			return next(c)
		}
	}
}

func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
