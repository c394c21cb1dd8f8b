// Package portal holds the application state of the marketplace portal: the
// cached listings, the payment pipeline, and the expiration sweep. The serve
// command owns a single App and hands it to the HTTP handlers.
package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/engine"
	"github.com/donaldgifford/maardu-realty/internal/pipeline"
	"github.com/donaldgifford/maardu-realty/internal/session"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

const (
	defaultRunTimeout   = 90 * time.Second
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// ErrExpirationsDisabled is returned when no expiration runner is configured.
var ErrExpirationsDisabled = errors.New("expiration checks are not configured")

// Listings is the cached listing set.
type Listings interface {
	Visible(c domain.FilterCriteria) []domain.Listing
	Len() int
	FetchedAt() time.Time
	Refresh(ctx context.Context) (int, error)
}

// Payments is the payment pipeline.
type Payments interface {
	Run(ctx context.Context, user *domain.User, req pipeline.Request) (*domain.PipelineRun, error)
	Resume(ctx context.Context, runID string) (*domain.PipelineRun, error)
	Get(ctx context.Context, runID string) (*domain.PipelineRun, error)
	History(ctx context.Context, userID string, limit int) ([]domain.PipelineRun, error)
}

// ExpirationRunner runs one expiration sweep on demand.
type ExpirationRunner interface {
	RunExpirationCheck(ctx context.Context) (*engine.ExpirationSummary, error)
}

// SearchResult is the filtered view of the listing set.
type SearchResult struct {
	Listings  []domain.Listing      `json:"listings"`
	Visible   int                   `json:"visible"`
	Total     int                   `json:"total"`
	Criteria  domain.FilterCriteria `json:"criteria"`
	FetchedAt *time.Time            `json:"fetched_at,omitempty"`
}

// SessionView describes the caller and the features open to them.
type SessionView struct {
	User          *domain.User     `json:"user,omitempty"`
	Authenticated bool             `json:"authenticated"`
	Features      []domain.Feature `json:"features"`
}

// App is the portal's application state.
type App struct {
	listings    Listings
	payments    Payments
	expirations ExpirationRunner
	log         *slog.Logger
	runTimeout  time.Duration
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger for the app.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithExpirations enables on-demand expiration checks.
func WithExpirations(r ExpirationRunner) Option {
	return func(a *App) {
		a.expirations = r
	}
}

// WithRunTimeout bounds a payment run started from a request. The run is
// detached from the request so a client disconnect does not abandon it
// mid-step.
func WithRunTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.runTimeout = d
		}
	}
}

// New creates an App.
func New(l Listings, p Payments, opts ...Option) *App {
	a := &App{
		listings:   l,
		payments:   p,
		log:        slog.Default(),
		runTimeout: defaultRunTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Search returns the cached listings that are visible under c.
func (a *App) Search(c domain.FilterCriteria) (*SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, apperrors.NewValidationError("price", err.Error())
	}

	visible := a.listings.Visible(c)
	res := &SearchResult{
		Listings: visible,
		Visible:  len(visible),
		Total:    a.listings.Len(),
		Criteria: c,
	}
	if at := a.listings.FetchedAt(); !at.IsZero() {
		res.FetchedAt = &at
	}
	return res, nil
}

// RefreshListings reloads the listing set from the marketplace.
func (a *App) RefreshListings(ctx context.Context) (int, error) {
	return a.listings.Refresh(ctx)
}

// Session describes the session for user, which may be nil.
func (*App) Session(user *domain.User) *SessionView {
	return &SessionView{
		User:          user,
		Authenticated: user != nil,
		Features:      session.Features(user),
	}
}

// HandlePaymentSuccess runs the payment pipeline for a completed payment.
func (a *App) HandlePaymentSuccess(
	ctx context.Context,
	user *domain.User,
	req pipeline.Request,
) (*domain.PipelineRun, error) {
	if err := requireFeature(user, domain.FeaturePayment); err != nil {
		return nil, err
	}

	runCtx, cancel := a.detached(ctx)
	defer cancel()

	run, err := a.payments.Run(runCtx, user, req)
	if err != nil {
		a.log.Warn("payment run did not complete",
			"user_id", user.ID,
			"listing_id", req.PaymentInfo.ListingID,
			"error", err,
		)
	}
	return run, err
}

// PaymentHistory returns the caller's payment runs, newest first.
func (a *App) PaymentHistory(ctx context.Context, user *domain.User, limit int) ([]domain.PipelineRun, error) {
	if err := requireFeature(user, domain.FeaturePaymentHistory); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	return a.payments.History(ctx, user.ID, limit)
}

// Payment returns one of the caller's runs. Runs owned by other users are
// reported as not found.
func (a *App) Payment(ctx context.Context, user *domain.User, runID string) (*domain.PipelineRun, error) {
	if err := requireFeature(user, domain.FeaturePaymentHistory); err != nil {
		return nil, err
	}
	return a.ownRun(ctx, user, runID)
}

// Invoice returns the invoice of one of the caller's runs.
func (a *App) Invoice(ctx context.Context, user *domain.User, runID string) (*domain.Invoice, error) {
	run, err := a.Payment(ctx, user, runID)
	if err != nil {
		return nil, err
	}
	if run.Invoice == nil {
		return nil, apperrors.NewNotFoundError("invoice", runID)
	}
	return run.Invoice, nil
}

// ResumePayment continues one of the caller's runs from its last step.
func (a *App) ResumePayment(ctx context.Context, user *domain.User, runID string) (*domain.PipelineRun, error) {
	if err := requireFeature(user, domain.FeaturePayment); err != nil {
		return nil, err
	}
	if _, err := a.ownRun(ctx, user, runID); err != nil {
		return nil, err
	}

	runCtx, cancel := a.detached(ctx)
	defer cancel()
	return a.payments.Resume(runCtx, runID)
}

// CheckExpirations runs the expiration sweep now.
func (a *App) CheckExpirations(ctx context.Context) (*engine.ExpirationSummary, error) {
	if a.expirations == nil {
		return nil, ErrExpirationsDisabled
	}
	return a.expirations.RunExpirationCheck(ctx)
}

func (a *App) ownRun(ctx context.Context, user *domain.User, runID string) (*domain.PipelineRun, error) {
	run, err := a.payments.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.UserID != user.ID {
		return nil, apperrors.NewNotFoundError("payment run", runID)
	}
	return run, nil
}

func (a *App) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), a.runTimeout)
}

func requireFeature(user *domain.User, f domain.Feature) error {
	if user == nil {
		return session.ErrNoSession
	}
	if !session.Allows(user, f) {
		return fmt.Errorf("feature %s: %w", f, session.ErrNoSession)
	}
	return nil
}
