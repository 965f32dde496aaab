package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"debt-portal/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Error responses produced by the echo error handler, by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler turns errors that escape handlers (unknown routes,
// oversized bodies, anything a handler returns instead of writing) into the
// standard error envelope. Handlers that already wrote a response are left alone.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := errorResponseFor(err, traceID)
	req := c.Request()

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(req.Context(), level, "request error",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"method", req.Method,
		"path", req.URL.Path,
		"error", err,
	)
	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	var writeErr error
	if req.Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, response)
	}
	if writeErr != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", writeErr)
	}
}

// errorResponseFor keeps echo's status and message for *echo.HTTPError and
// hides everything else behind SYSTEM_001.
func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	if he, ok := err.(*echo.HTTPError); ok {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
		return errors.NewErrorResponse(errors.CodeForStatus(he.Code), traceID, errors.WithMessage(message)), he.Code
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.Status()
}
