package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/api/handlers"
	"github.com/donaldgifford/maardu-realty/internal/portal"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

func TestGetSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      *domain.User
		wantAuth  bool
		wantPay   bool
		wantCount int
	}{
		{name: "anonymous", wantCount: 3},
		{name: "signed in", user: &domain.User{ID: "u-1", Email: "mari@example.ee"}, wantAuth: true, wantPay: true, wantCount: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			if tt.user != nil {
				signedIn(api, tt.user)
			}
			handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(&fakeApp{}))

			resp := api.Get("/api/v1/session")
			require.Equal(t, http.StatusOK, resp.Code)

			var view portal.SessionView
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &view))
			assert.Equal(t, tt.wantAuth, view.Authenticated)
			assert.Len(t, view.Features, tt.wantCount)
			assert.Equal(t, tt.wantPay, containsFeature(view.Features, domain.FeaturePayment))
			if tt.user != nil {
				require.NotNil(t, view.User)
				assert.Equal(t, tt.user.ID, view.User.ID)
			} else {
				assert.Nil(t, view.User)
			}
		})
	}
}

func containsFeature(fs []domain.Feature, f domain.Feature) bool {
	for _, got := range fs {
		if got == f {
			return true
		}
	}
	return false
}
