// Package middleware provides Echo middleware for the maardu-realty API.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/maardu-realty/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping
// scanner traffic from minting a series per probed URL.
const unmatchedRoute = "unmatched"

// probeGauges are the operational paths that update an up/down gauge
// instead of the request histogram. /metrics is skipped entirely.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and count by
// method, route template, and final status. Handler errors are rendered
// before the status is read so error responses are counted with their real
// code.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			route := routeLabel(c)
			status := c.Response().Status

			if route == "/metrics" {
				return nil
			}
			if g, ok := probeGauges[route]; ok {
				g.Set(boolGauge(status >= 200 && status < 300))
				return nil
			}

			code := strconv.Itoa(status)
			method := c.Request().Method
			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, code).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, code).
				Inc()

			return nil
		}
	}
}

// routeLabel returns the matched route template, for example
// /api/v1/payments/:id, so per-run URLs share one series.
func routeLabel(c echo.Context) string {
	p := c.Path()
	if p == "" || c.Response().Status == http.StatusNotFound && !registered(c, p) {
		return unmatchedRoute
	}
	return p
}

// registered reports whether path is a route for the request method. The
// router can leave a partial match in c.Path() when nothing matched.
func registered(c echo.Context, path string) bool {
	method := c.Request().Method
	for _, r := range c.Echo().Routes() {
		if r.Path == path && r.Method == method {
			return true
		}
	}
	return false
}

func boolGauge(up bool) float64 {
	if up {
		return 1
	}
	return 0
}
