package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/portal"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// ListingSearcher filters and refreshes the cached listing set.
type ListingSearcher interface {
	Search(c domain.FilterCriteria) (*portal.SearchResult, error)
	RefreshListings(ctx context.Context) (int, error)
}

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	app ListingSearcher
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(app ListingSearcher) *ListingsHandler {
	return &ListingsHandler{app: app}
}

// --- Input/Output types ---

// ListListingsInput is the filter state applied to the listing set.
type ListListingsInput struct {
	Query    string  `query:"q"         doc:"Case-insensitive substring of the listing title"`
	PriceMin float64 `query:"price_min" doc:"Lowest price, inclusive"                           minimum:"0"`
	PriceMax float64 `query:"price_max" doc:"Highest price, inclusive"                          minimum:"0" default:"1000000"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body *portal.SearchResult
}

// RefreshListingsOutput is the response for the refresh endpoint.
type RefreshListingsOutput struct {
	Body struct {
		Status string `json:"status" example:"refreshed" doc:"Refresh status"`
		Count  int    `json:"count"  example:"42"        doc:"Listings now cached"`
	}
}

// --- Handlers ---

// ListListings returns the active cached listings matching the query and
// price range.
func (h *ListingsHandler) ListListings(
	_ context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	res, err := h.app.Search(domain.FilterCriteria{
		Query:    input.Query,
		PriceMin: input.PriceMin,
		PriceMax: input.PriceMax,
	})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &ListListingsOutput{Body: res}, nil
}

// RefreshListings reloads the listing set from the marketplace. On failure
// the previous set stays cached.
func (h *ListingsHandler) RefreshListings(ctx context.Context, _ *struct{}) (*RefreshListingsOutput, error) {
	n, err := h.app.RefreshListings(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	resp := &RefreshListingsOutput{}
	resp.Body.Status = "refreshed"
	resp.Body.Count = n
	return resp, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List visible listings",
		Description: "Returns active cached listings whose title contains q and whose price lies in " +
			"[price_min, price_max].",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/refresh",
		Summary:     "Refresh the listing set",
		Description: "Fetches the listing collection from the marketplace and replaces the cached set.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadGateway},
	}, h.RefreshListings)
}
