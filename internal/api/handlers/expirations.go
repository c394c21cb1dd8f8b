package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/engine"
	"github.com/donaldgifford/maardu-realty/internal/portal"
)

// ExpirationChecker runs the expiration sweep on demand.
type ExpirationChecker interface {
	CheckExpirations(ctx context.Context) (*engine.ExpirationSummary, error)
}

// ExpirationsHandler handles manual expiration sweeps.
type ExpirationsHandler struct {
	app ExpirationChecker
}

// NewExpirationsHandler creates a new ExpirationsHandler.
func NewExpirationsHandler(app ExpirationChecker) *ExpirationsHandler {
	return &ExpirationsHandler{app: app}
}

// CheckExpirationsOutput is the response body for the check endpoint.
type CheckExpirationsOutput struct {
	Body *engine.ExpirationSummary
}

// Check runs the sweep now. Owners already notified today are skipped, so
// repeating the call does not send duplicate emails. Individual send
// failures are reported in the summary; the call fails only when the
// expired listings could not be fetched or the sweep is already running.
func (h *ExpirationsHandler) Check(ctx context.Context, _ *struct{}) (*CheckExpirationsOutput, error) {
	summary, err := h.app.CheckExpirations(ctx)
	switch {
	case errors.Is(err, portal.ErrExpirationsDisabled):
		return nil, huma.Error503ServiceUnavailable(err.Error())
	case err != nil && (summary == nil || summary.Expired == 0):
		return nil, toHTTPError(err)
	}
	return &CheckExpirationsOutput{Body: summary}, nil
}

// RegisterExpirationRoutes registers expiration endpoints with the Huma API.
func RegisterExpirationRoutes(api huma.API, h *ExpirationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "check-expirations",
		Method:      http.MethodPost,
		Path:        "/api/v1/expirations/check",
		Summary:     "Run the expiration sweep",
		Description: "Fetches expired listings and emails each owner at most once per UTC day.",
		Tags:        []string{"expirations"},
		Errors: []int{
			http.StatusConflict,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
		},
	}, h.Check)
}
