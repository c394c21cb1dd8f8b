// Package filter derives the visible subset of the listing set from the
// current search criteria. It is a pure function of its inputs and never
// fails.
package filter

import (
	"strings"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// Apply returns the listings that are active, whose title contains the query
// case-insensitively, and whose price lies within [PriceMin, PriceMax]
// inclusive. The result preserves the relative order of the input and is
// never nil.
func Apply(listings []domain.Listing, c domain.FilterCriteria) []domain.Listing {
	query := strings.ToLower(c.Query)

	out := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if matches(&listings[i], query, c.PriceMin, c.PriceMax) {
			out = append(out, listings[i])
		}
	}
	return out
}

// Matches reports whether a single listing passes the criteria.
func Matches(l *domain.Listing, c domain.FilterCriteria) bool {
	return matches(l, strings.ToLower(c.Query), c.PriceMin, c.PriceMax)
}

// matches expects query to be lowercased already.
func matches(l *domain.Listing, query string, minPrice, maxPrice float64) bool {
	if !l.IsActive {
		return false
	}
	if l.Price < minPrice || l.Price > maxPrice {
		return false
	}
	return query == "" || strings.Contains(strings.ToLower(l.Title), query)
}
