// Package listings holds the portal's cached copy of the marketplace
// listing collection.
package listings

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/donaldgifford/maardu-realty/internal/metrics"
	"github.com/donaldgifford/maardu-realty/pkg/filter"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// Fetcher retrieves the full listing collection from the marketplace.
type Fetcher interface {
	ListListings(ctx context.Context) ([]domain.Listing, error)
}

type snapshot struct {
	listings  []domain.Listing
	fetchedAt time.Time
}

// Store is the authoritative in-memory listing set. The set is only ever
// replaced as a whole; readers never observe a partially applied refresh.
type Store struct {
	fetcher Fetcher
	log     *slog.Logger
	now     func() time.Time

	refreshMu sync.Mutex // serializes refreshes so the newest fetch wins
	current   atomic.Pointer[snapshot]
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the time source used for FetchedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store backed by f.
func New(f Fetcher, opts ...Option) *Store {
	s := &Store{
		fetcher: f,
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&snapshot{listings: []domain.Listing{}})
	return s
}

// Refresh fetches the listing collection and replaces the cached set with
// it. On error the previous set is kept. It returns the new listing count.
func (s *Store) Refresh(ctx context.Context) (int, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	fetched, err := s.fetcher.ListListings(ctx)
	if err != nil {
		metrics.ListingsRefreshTotal.WithLabelValues("error").Inc()
		s.log.Warn("listing refresh failed, keeping previous set",
			"cached", s.Len(), "error", err)
		return 0, fmt.Errorf("refreshing listings: %w", err)
	}

	next := &snapshot{
		listings:  make([]domain.Listing, len(fetched)),
		fetchedAt: s.now(),
	}
	copy(next.listings, fetched)
	s.current.Store(next)

	metrics.ListingsRefreshTotal.WithLabelValues("success").Inc()
	metrics.ListingsCached.Set(float64(len(next.listings)))
	metrics.ListingsLastRefreshTimestamp.Set(float64(next.fetchedAt.Unix()))

	s.log.Debug("listings refreshed", "count", len(next.listings))
	return len(next.listings), nil
}

// Snapshot returns a copy of the cached listings, in marketplace order.
func (s *Store) Snapshot() []domain.Listing {
	cur := s.current.Load()
	out := make([]domain.Listing, len(cur.listings))
	copy(out, cur.listings)
	return out
}

// Visible returns the cached listings that satisfy c.
func (s *Store) Visible(c domain.FilterCriteria) []domain.Listing {
	return filter.Apply(s.current.Load().listings, c)
}

// Len returns the number of cached listings.
func (s *Store) Len() int {
	return len(s.current.Load().listings)
}

// FetchedAt returns when the cached set was last replaced, or the zero time
// if it never was.
func (s *Store) FetchedAt() time.Time {
	return s.current.Load().fetchedAt
}
