package client

import (
	"context"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// SessionView describes the caller and the features open to them.
type SessionView struct {
	User          *domain.User     `json:"user,omitempty"`
	Authenticated bool             `json:"authenticated"`
	Features      []domain.Feature `json:"features"`
}

// GetSession returns the session the configured token resolves to.
func (c *Client) GetSession(ctx context.Context) (*SessionView, error) {
	var view SessionView
	if err := c.get(ctx, "/api/v1/session", &view); err != nil {
		return nil, err
	}
	return &view, nil
}
