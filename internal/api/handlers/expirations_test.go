package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/api/handlers"
	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/engine"
	"github.com/donaldgifford/maardu-realty/internal/portal"
)

func TestCheckExpirations(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		app        *fakeApp
		wantStatus int
		wantBody   string
	}{
		{
			name: "all sent",
			app: &fakeApp{summary: &engine.ExpirationSummary{
				Day: day, Expired: 3, Sent: 3,
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"sent":3`,
		},
		{
			name: "partial failure still reports summary",
			app: &fakeApp{
				summary: &engine.ExpirationSummary{
					Day: day, Expired: 3, Sent: 2, Failed: 1,
				},
				expirationErr: apperrors.NewServerRejection("send_expiration_email", http.StatusBadGateway, "smtp down"),
			},
			wantStatus: http.StatusOK,
			wantBody:   `"failed":1`,
		},
		{
			name: "fetch failure",
			app: &fakeApp{
				summary:       &engine.ExpirationSummary{Day: day},
				expirationErr: apperrors.NewNetworkError("check_expired_listings", errors.New("connection reset")),
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "connection reset",
		},
		{
			name:       "already running",
			app:        &fakeApp{expirationErr: apperrors.NewConflictError("job expiration_check", "already running")},
			wantStatus: http.StatusConflict,
			wantBody:   "already running",
		},
		{
			name:       "not configured",
			app:        &fakeApp{expirationErr: portal.ErrExpirationsDisabled},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterExpirationRoutes(api, handlers.NewExpirationsHandler(tt.app))

			resp := api.Post("/api/v1/expirations/check")
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
