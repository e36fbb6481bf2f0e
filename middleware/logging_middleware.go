package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware records one structured line per request. The health
// endpoint is skipped to cut probe noise.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/api/health" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"response_size", res.Size,
				"remote_addr", c.RealIP(),
			}
			if id, ok := c.Get("request_id").(string); ok {
				attrs = append(attrs, "request_id", id)
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}

			switch {
			case res.Status >= 500:
				baseLogger.Error("request completed", attrs...)
			case res.Status >= 400:
				baseLogger.Warn("request completed", attrs...)
			default:
				baseLogger.Info("request completed", attrs...)
			}

			return err
		}
	}
}
