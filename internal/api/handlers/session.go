package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/portal"
	"github.com/donaldgifford/maardu-realty/internal/session"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// SessionDescriber reports the features open to a user.
type SessionDescriber interface {
	Session(user *domain.User) *portal.SessionView
}

// SessionHandler serves the current session.
type SessionHandler struct {
	app SessionDescriber
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(app SessionDescriber) *SessionHandler {
	return &SessionHandler{app: app}
}

// GetSessionOutput is the response body for the session endpoint.
type GetSessionOutput struct {
	Body *portal.SessionView
}

// GetSession returns the caller and the feature set their session unlocks.
// Anonymous callers get the search and sign-in features only.
func (h *SessionHandler) GetSession(ctx context.Context, _ *struct{}) (*GetSessionOutput, error) {
	return &GetSessionOutput{Body: h.app.Session(session.UserFromContext(ctx))}, nil
}

// RegisterSessionRoutes registers session endpoints with the Huma API.
func RegisterSessionRoutes(api huma.API, h *SessionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Current session",
		Description: "Returns the authenticated user, if any, and the portal features available to them.",
		Tags:        []string{"session"},
	}, h.GetSession)
}
