package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListingCounter reports how many listings are cached.
type ListingCounter interface {
	Len() int
}

// ReadyResponse is the readiness probe body.
type ReadyResponse struct {
	Status         string `json:"status" example:"ready"`
	Database       string `json:"database" example:"ok"`
	ListingsCached int    `json:"listings_cached" example:"42"`
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	db       Pinger
	listings ListingCounter
}

// NewHealthHandler creates a new HealthHandler. listings may be nil.
func NewHealthHandler(db Pinger, listings ListingCounter) *HealthHandler {
	return &HealthHandler{db: db, listings: listings}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise. An empty
// listing cache does not make the service unready; the count is reported
// for operators.
func (h *HealthHandler) Readyz(c echo.Context) error {
	resp := ReadyResponse{Status: "ready", Database: "ok"}
	if h.listings != nil {
		resp.ListingsCached = h.listings.Len()
	}

	if err := h.db.Ping(c.Request().Context()); err != nil {
		resp.Status = "unavailable"
		resp.Database = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
