package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader carries the trace ID on requests and responses.
const TraceIDHeader = "X-Trace-ID"

// TraceIDContextKey is where the trace ID lives in the echo context.
const TraceIDContextKey = "trace_id"

// RequestID tags every request with a trace ID. An incoming X-Trace-ID is
// kept so callers can correlate retries; otherwise a fresh UUID is issued.
// The ID is echoed on the response and stored in the context for error
// responses and logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" when the middleware did
// not run.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
