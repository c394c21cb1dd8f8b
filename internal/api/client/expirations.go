package client

import (
	"context"
	"time"
)

// ExpirationSummary reports one expiration sweep.
type ExpirationSummary struct {
	Day     time.Time `json:"day"`
	Expired int       `json:"expired"`
	Sent    int       `json:"sent"`
	Skipped int       `json:"skipped"`
	Failed  int       `json:"failed"`
}

// CheckExpirations runs the expiration sweep now.
func (c *Client) CheckExpirations(ctx context.Context) (*ExpirationSummary, error) {
	var summary ExpirationSummary
	if err := c.post(ctx, "/api/v1/expirations/check", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
