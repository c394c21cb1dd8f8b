// Package handlers implements the HTTP operations of the maardu-realty API.
// Operations are registered with huma; the health probes are plain Echo
// handlers.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
