package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// ListingsResponse is the filtered view of the cached listing set.
type ListingsResponse struct {
	Listings  []domain.Listing      `json:"listings"`
	Visible   int                   `json:"visible"`
	Total     int                   `json:"total"`
	Criteria  domain.FilterCriteria `json:"criteria"`
	FetchedAt *time.Time            `json:"fetched_at,omitempty"`
}

// ListListingsParams defines query parameters for listing queries. Zero
// prices leave the server defaults in place.
type ListListingsParams struct {
	Query    string
	PriceMin float64
	PriceMax float64
}

// ListListings returns the active listings matching params.
func (c *Client) ListListings(ctx context.Context, params *ListListingsParams) (*ListingsResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Query != "" {
			q.Set("q", params.Query)
		}
		if params.PriceMin > 0 {
			q.Set("price_min", strconv.FormatFloat(params.PriceMin, 'f', -1, 64))
		}
		if params.PriceMax > 0 {
			q.Set("price_max", strconv.FormatFloat(params.PriceMax, 'f', -1, 64))
		}
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshListings reloads the listing cache from the marketplace and returns
// the number of listings now cached.
func (c *Client) RefreshListings(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.post(ctx, "/api/v1/listings/refresh", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
