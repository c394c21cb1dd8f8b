package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/maardu-realty/internal/session"
	"github.com/donaldgifford/maardu-realty/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// probePaths are polled by orchestrators; only their first success and
// every failure are logged.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seenProbe sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status

			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			}
			if _, probe := probePaths[path]; probe {
				if status >= 200 && status < 300 {
					if _, logged := seenProbe.LoadOrStore(path, struct{}{}); logged {
						return err
					}
				} else {
					level = slog.LevelWarn
				}
			}

			ctx := c.Request().Context()
			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if u := session.UserFromContext(ctx); u != nil {
				attrs = append(attrs, "user_id", u.ID)
			}
			logger.WithTrace(ctx, log).Log(ctx, level, "request", attrs...)

			return err
		}
	}
}
