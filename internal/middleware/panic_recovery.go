package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"debt-portal/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery answers a panicking handler with SYSTEM_001 and logs the
// panic value with its stack. The panic value never reaches the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				req := c.Request()
				slog.ErrorContext(req.Context(), "panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"stack", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}
				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				err = c.JSON(response.Status(), response)
			}()

			return next(c)
		}
	}
}
