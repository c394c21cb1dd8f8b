// Package engine runs the marketplace's periodic background work: the daily
// expired-listing sweep and the scheduler that drives it alongside the
// stalled-pipeline sweep and listing refresh.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/maardu-realty/internal/metrics"
	"github.com/donaldgifford/maardu-realty/internal/notify"
	"github.com/donaldgifford/maardu-realty/internal/store"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// releaseTimeout bounds the claim release issued after a failed send, which
// runs even when the sweep context is already done.
const releaseTimeout = 5 * time.Second

// ExpirationSource is the part of the marketplace API the sweep needs.
type ExpirationSource interface {
	CheckExpiredListings(ctx context.Context) ([]domain.Listing, error)
	SendExpirationEmail(ctx context.Context, userID, listingID string) error
}

// ExpirationSummary reports the outcome of one sweep.
type ExpirationSummary struct {
	Day     time.Time `json:"day"`
	Expired int       `json:"expired"`
	Sent    int       `json:"sent"`
	Skipped int       `json:"skipped"`
	Failed  int       `json:"failed"`
}

// Engine checks for expired listings and notifies their owners once per day.
type Engine struct {
	source   ExpirationSource
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
}

// EngineOption configures optional Engine parameters.
type EngineOption func(*Engine)

// NewEngine creates a new Engine with the given dependencies.
func NewEngine(
	source ExpirationSource,
	s store.Store,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	if n == nil {
		n = notify.NewNoOpNotifier(slog.Default())
	}
	eng := &Engine{
		source:   source,
		store:    s,
		notifier: n,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// WithLogger sets the logger for the engine.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock overrides the time source used to pick the notice day.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// CheckExpiredListings fetches the expired listings and sends one expiration
// email per listing and UTC day. A failed send releases its claim so the
// next sweep retries it; it does not stop the remaining sends.
func (eng *Engine) CheckExpiredListings(ctx context.Context) (*ExpirationSummary, error) {
	day := store.NoticeDay(eng.now())
	summary := &ExpirationSummary{Day: day}

	expired, err := eng.source.CheckExpiredListings(ctx)
	if err != nil {
		return summary, fmt.Errorf("checking expired listings: %w", err)
	}

	summary.Expired = len(expired)
	metrics.ExpiredListingsSeenTotal.Add(float64(len(expired)))
	eng.log.Info("expired listings fetched", "count", len(expired), "day", day.Format(time.DateOnly))

	var (
		errs   []error
		failed []string
	)

	for i := range expired {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		l := &expired[i]
		sent, err := eng.notifyOwner(ctx, l, day)
		switch {
		case err != nil:
			summary.Failed++
			failed = append(failed, l.ID)
			metrics.ExpirationEmailFailuresTotal.Inc()
			errs = append(errs, err)
			eng.log.Error("expiration email failed",
				"listing_id", l.ID,
				"user_id", l.UserID,
				"error", err,
			)
		case sent:
			summary.Sent++
			metrics.ExpirationEmailsSentTotal.Inc()
			eng.log.Info("expiration email sent", "listing_id", l.ID, "user_id", l.UserID)
		default:
			summary.Skipped++
			metrics.ExpirationEmailsSkippedTotal.Inc()
			eng.log.Debug("expiration email already sent today", "listing_id", l.ID)
		}
	}

	if summary.Expired > 0 {
		digest := &notify.ExpirationDigest{
			Day:            day,
			Expired:        summary.Expired,
			Sent:           summary.Sent,
			Skipped:        summary.Skipped,
			Failed:         summary.Failed,
			FailedListings: failed,
		}
		if err := eng.notifier.NotifyExpirationDigest(ctx, digest); err != nil {
			eng.log.Warn("expiration digest not delivered", "error", err)
		}
	}

	return summary, errors.Join(errs...)
}

// notifyOwner claims the (listing, day) notice and sends the email. It
// reports false without error when the notice was already claimed.
func (eng *Engine) notifyOwner(ctx context.Context, l *domain.Listing, day time.Time) (bool, error) {
	if l.ID == "" || l.UserID == "" {
		return false, fmt.Errorf("expired listing %q: missing id or owner", l.ID)
	}

	claimed, err := eng.store.ClaimExpirationNotice(ctx, l.ID, l.UserID, day)
	if err != nil {
		return false, fmt.Errorf("claiming notice for listing %s: %w", l.ID, err)
	}
	if !claimed {
		return false, nil
	}

	if err := eng.source.SendExpirationEmail(ctx, l.UserID, l.ID); err != nil {
		relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if relErr := eng.store.ReleaseExpirationNotice(relCtx, l.ID, day); relErr != nil {
			eng.log.Error("releasing expiration notice claim",
				"listing_id", l.ID,
				"error", relErr,
			)
		}
		return false, fmt.Errorf("sending expiration email for listing %s: %w", l.ID, err)
	}

	return true, nil
}
