package domain

import (
	"errors"
	"fmt"
	"math"
)

// DefaultPriceMax is the upper bound of the initial price range.
const DefaultPriceMax = 1_000_000

// FilterCriteria is the transient search state applied to the listing set.
type FilterCriteria struct {
	Query    string  `json:"query"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
}

// DefaultFilterCriteria returns the criteria a fresh session starts with:
// empty query, price range 0..DefaultPriceMax.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{PriceMax: DefaultPriceMax}
}

// Validate checks that the price range is well formed. Bounds must be finite
// numbers; NaN compares false against everything and would pass the range
// checks below.
func (c FilterCriteria) Validate() error {
	var errs []error
	if !finite(c.PriceMin) {
		errs = append(errs, fmt.Errorf("price_min must be a finite number (got %v)", c.PriceMin))
	}
	if !finite(c.PriceMax) {
		errs = append(errs, fmt.Errorf("price_max must be a finite number (got %v)", c.PriceMax))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if c.PriceMin < 0 {
		errs = append(errs, fmt.Errorf("price_min must not be negative (got %v)", c.PriceMin))
	}
	if c.PriceMax < 0 {
		errs = append(errs, fmt.Errorf("price_max must not be negative (got %v)", c.PriceMax))
	}
	if c.PriceMin > c.PriceMax {
		errs = append(errs, fmt.Errorf(
			"price_min (%v) must not exceed price_max (%v)", c.PriceMin, c.PriceMax,
		))
	}
	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
