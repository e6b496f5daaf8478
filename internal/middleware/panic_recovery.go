package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"pennywise/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into a generic 500 response so a
// single bad request cannot take the process down.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					respondToPanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, recovered any) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"stack", string(debug.Stack()),
	)

	resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
		slog.Error("writing panic response failed",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
