package handlers

import (
	"log/slog"
	"net/http"

	"debt-portal/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through SendError (4xx and 503 outcomes with
// a known code) or SendSystemError (anything unexpected, which is logged and
// answered with a generic 500). Successful responses are the bare record JSON
// the portal frontend renders, with no envelope.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.Status(), errorResponse)
}

// SendSystemError logs the internal error and answers with a generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"trace_id", traceID,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
