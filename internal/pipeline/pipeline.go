// Package pipeline runs the post-payment workflow: record the invoice draft,
// activate the listing, generate the invoice, email the confirmation, and
// refresh the listing set. Each completed step is persisted before the next
// one starts, so a run interrupted at any point can be resumed.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/marketplace"
	"github.com/donaldgifford/maardu-realty/internal/metrics"
	"github.com/donaldgifford/maardu-realty/internal/notify"
	"github.com/donaldgifford/maardu-realty/internal/store"
	"github.com/donaldgifford/maardu-realty/pkg/logger"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

const (
	tracerName = "github.com/donaldgifford/maardu-realty/internal/pipeline"

	defaultMaxAttempts    = 3
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 10 * time.Second

	stalledBatchSize   = 100
	failurePersistTime = 10 * time.Second
)

// Refresher reloads the listing set.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// StepError reports the step at which a run stopped.
type StepError struct {
	RunID string
	Step  domain.PipelineStep
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("payment run %s failed at %s: %v", e.RunID, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Pipeline executes payment runs.
type Pipeline struct {
	api      marketplace.API
	store    store.Store
	listings Refresher
	notifier notify.Notifier
	log      *slog.Logger
	tracer   trace.Tracer
	attempts metric.Int64Counter
	now      func() time.Time

	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	inflight *guard
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithNotifier sets the notifier used for terminal failures.
func WithNotifier(n notify.Notifier) Option {
	return func(p *Pipeline) {
		p.notifier = n
	}
}

// WithRetry sets the per-step attempt budget and the exponential backoff
// bounds between attempts.
func WithRetry(maxAttempts int, initial, maxInterval time.Duration) Option {
	return func(p *Pipeline) {
		if maxAttempts > 0 {
			p.maxAttempts = maxAttempts
		}
		if initial > 0 {
			p.initialBackoff = initial
		}
		if maxInterval > 0 {
			p.maxBackoff = maxInterval
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline.
func New(api marketplace.API, st store.Store, listings Refresher, opts ...Option) *Pipeline {
	p := &Pipeline{
		api:            api,
		store:          st,
		listings:       listings,
		log:            slog.Default(),
		tracer:         otel.Tracer(tracerName),
		now:            time.Now,
		maxAttempts:    defaultMaxAttempts,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
		inflight:       newGuard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	attempts, err := otel.Meter(tracerName).Int64Counter("pipeline.step.attempts",
		metric.WithDescription("Remote calls made by payment pipeline steps, including retries."))
	if err != nil {
		p.log.Warn("creating pipeline attempts counter", "error", err)
		p.attempts = noop.Int64Counter{}
	} else {
		p.attempts = attempts
	}
	if p.notifier == nil {
		p.notifier = notify.NewNoOpNotifier(p.log)
	}
	return p
}

// Run starts a new run for a successful payment by user. Validation errors
// are returned before anything is persisted or sent. The returned run
// reflects the last persisted state even when err is non-nil.
func (p *Pipeline) Run(ctx context.Context, user *domain.User, req Request) (*domain.PipelineRun, error) {
	if user == nil || user.ID == "" {
		return nil, apperrors.NewValidationError("userId", "required")
	}

	draft, err := BuildDraft(req)
	if err != nil {
		return nil, err
	}

	if !p.inflight.acquire(draft.ListingID) {
		return nil, apperrors.NewConflictError("listing "+draft.ListingID, "a payment is already being processed")
	}
	defer p.inflight.release(draft.ListingID)

	run := &domain.PipelineRun{
		UserID:    user.ID,
		ListingID: draft.ListingID,
		Step:      domain.StepDrafted,
		Draft:     draft,
	}
	if err := p.store.CreatePipelineRun(ctx, run); err != nil {
		return nil, fmt.Errorf("recording invoice draft: %w", err)
	}

	p.log.Info("payment run started",
		"run_id", run.ID,
		"listing_id", run.ListingID,
		"user_id", run.UserID,
		"invoice_type", draft.InvoiceType,
	)

	return p.advance(ctx, run)
}

// Resume continues a run from its last persisted step. A failed run restarts
// at the step that failed; a completed run is returned unchanged.
func (p *Pipeline) Resume(ctx context.Context, runID string) (*domain.PipelineRun, error) {
	run, err := p.store.GetPipelineRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Step == domain.StepCompleted {
		return run, nil
	}

	if !p.inflight.acquire(run.ListingID) {
		return run, apperrors.NewConflictError("listing "+run.ListingID, "a payment is already being processed")
	}
	defer p.inflight.release(run.ListingID)

	if run.Step == domain.StepFailed {
		run.Step = previousStep(run.FailedStep)
		run.FailedStep = ""
		run.LastError = ""
		if err := p.store.UpdatePipelineRun(ctx, run); err != nil {
			return run, fmt.Errorf("reopening payment run %s: %w", run.ID, err)
		}
	}

	metrics.PipelineResumedTotal.Inc()
	p.log.Info("payment run resumed", "run_id", run.ID, "step", run.Step)

	return p.advance(ctx, run)
}

// ResumeStalled resumes non-terminal runs that have not advanced for
// olderThan, typically because the process stopped mid-run. Runs executing
// in this process are skipped. It returns the number of runs that reached
// completion.
func (p *Pipeline) ResumeStalled(ctx context.Context, olderThan time.Duration) (int, error) {
	runs, err := p.store.ListStalledPipelineRuns(ctx, olderThan, stalledBatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing stalled payment runs: %w", err)
	}

	var (
		completed int
		errs      []error
	)
	for i := range runs {
		run := &runs[i]
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if !p.inflight.acquire(run.ListingID) {
			continue
		}

		metrics.PipelineResumedTotal.Inc()
		p.log.Info("resuming stalled payment run", "run_id", run.ID, "step", run.Step)

		_, err := p.advance(ctx, run)
		p.inflight.release(run.ListingID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		completed++
	}

	return completed, errors.Join(errs...)
}

// Get returns a single run.
func (p *Pipeline) Get(ctx context.Context, runID string) (*domain.PipelineRun, error) {
	return p.store.GetPipelineRun(ctx, runID)
}

// History returns a user's runs, newest first.
func (p *Pipeline) History(ctx context.Context, userID string, limit int) ([]domain.PipelineRun, error) {
	runs, err := p.store.ListPipelineRuns(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing payment history: %w", err)
	}
	return runs, nil
}

// advance executes the steps after run.Step until the run completes or a
// step fails.
func (p *Pipeline) advance(ctx context.Context, run *domain.PipelineRun) (*domain.PipelineRun, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run", trace.WithAttributes(
		attribute.String("pipeline.run_id", run.ID),
		attribute.String("pipeline.listing_id", run.ListingID),
		attribute.String("pipeline.resume_from", string(run.Step)),
	))
	defer span.End()

	log := logger.WithTrace(ctx, p.log).With("run_id", run.ID, "listing_id", run.ListingID)

	for !run.Terminal() {
		next, ok := nextStep(run.Step)
		if !ok {
			err := fmt.Errorf("unknown step marker %q", run.Step)
			span.SetStatus(codes.Error, err.Error())
			return run, err
		}

		if err := p.execute(ctx, run, next); err != nil {
			if ctx.Err() != nil {
				// Interrupted, not failed: the stalled sweep resumes from the
				// last persisted marker.
				log.Warn("payment run interrupted", "step", next, "error", err)
				span.SetStatus(codes.Error, "interrupted")
				return run, &StepError{RunID: run.ID, Step: next, Err: err}
			}
			p.fail(ctx, run, next, err, log)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return run, &StepError{RunID: run.ID, Step: next, Err: err}
		}

		run.Step = next
		if next == domain.StepCompleted {
			completedAt := p.now()
			run.CompletedAt = &completedAt
		}
		if err := p.store.UpdatePipelineRun(ctx, run); err != nil {
			// The marker was not persisted; the run stays at the previous
			// step in the store and the stalled sweep picks it up again.
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return run, fmt.Errorf("persisting step %s of payment run %s: %w", next, run.ID, err)
		}
		log.Debug("payment step persisted", "step", next)
	}

	metrics.PipelineRunsTotal.WithLabelValues("completed").Inc()
	log.Info("payment run completed", "attempts", run.Attempts)
	return run, nil
}

// execute performs the remote work that produces the next marker, retrying
// transient failures.
func (p *Pipeline) execute(ctx context.Context, run *domain.PipelineRun, next domain.PipelineStep) error {
	var action func(context.Context) error

	switch next {
	case domain.StepActivated:
		action = func(ctx context.Context) error {
			return p.api.ActivateListing(ctx, run.UserID, run.ListingID)
		}
	case domain.StepInvoiced:
		action = func(ctx context.Context) error {
			inv, err := p.api.GenerateInvoice(ctx, run.UserID, run.Draft.PaymentInfo)
			if err != nil {
				return err
			}
			run.Invoice = inv
			return nil
		}
	case domain.StepEmailed:
		if run.Invoice == nil {
			return apperrors.NewValidationError("invoice", "missing for confirmation email")
		}
		action = func(ctx context.Context) error {
			return p.api.SendPaymentConfirmation(ctx, run.UserID, run.Draft.PaymentInfo, run.Invoice)
		}
	case domain.StepRefreshed:
		action = func(ctx context.Context) error {
			_, err := p.listings.Refresh(ctx)
			return err
		}
	case domain.StepCompleted:
		return nil
	default:
		return fmt.Errorf("no action for step %q", next)
	}

	ctx, span := p.tracer.Start(ctx, "pipeline.step."+string(next))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.PipelineStepDuration.WithLabelValues(string(next)).Observe(time.Since(start).Seconds())
	}()

	op := func() error {
		run.Attempts++
		p.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("step", string(next))))
		err := action(ctx)
		if err != nil && !apperrors.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	onRetry := func(err error, wait time.Duration) {
		metrics.PipelineStepRetriesTotal.WithLabelValues(string(next)).Inc()
		p.log.Warn("payment step failed, retrying",
			"run_id", run.ID,
			"step", next,
			"wait", wait,
			"error", err,
		)
	}

	err := backoff.RetryNotify(op, p.backoff(ctx), onRetry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (p *Pipeline) backoff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.initialBackoff
	exp.MaxInterval = p.maxBackoff
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.maxAttempts-1)), ctx)
}

// fail marks the run failed at step, persists it, and alerts operators. It
// runs detached from ctx so a cancelled request still records the failure.
func (p *Pipeline) fail(
	ctx context.Context,
	run *domain.PipelineRun,
	step domain.PipelineStep,
	cause error,
	log *slog.Logger,
) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failurePersistTime)
	defer cancel()

	run.Step = domain.StepFailed
	run.FailedStep = step
	run.LastError = cause.Error()

	metrics.PipelineRunsTotal.WithLabelValues("failed").Inc()
	log.Error("payment run failed", "step", step, "attempts", run.Attempts, "error", cause)

	if err := p.store.UpdatePipelineRun(ctx, run); err != nil {
		log.Error("recording payment run failure", "error", err)
	}

	if err := p.notifier.NotifyPipelineFailure(ctx, &notify.PipelineFailure{
		RunID:      run.ID,
		UserID:     run.UserID,
		ListingID:  run.ListingID,
		FailedStep: step,
		Attempts:   run.Attempts,
		Error:      run.LastError,
		At:         p.now(),
	}); err != nil {
		log.Warn("sending payment failure notification", "error", err)
	}
}

// stepOrder lists the markers in execution order.
var stepOrder = []domain.PipelineStep{
	domain.StepDrafted,
	domain.StepActivated,
	domain.StepInvoiced,
	domain.StepEmailed,
	domain.StepRefreshed,
	domain.StepCompleted,
}

func nextStep(cur domain.PipelineStep) (domain.PipelineStep, bool) {
	for i := 0; i < len(stepOrder)-1; i++ {
		if stepOrder[i] == cur {
			return stepOrder[i+1], true
		}
	}
	return "", false
}

// previousStep returns the marker preceding step, or drafted when step is
// unknown.
func previousStep(step domain.PipelineStep) domain.PipelineStep {
	for i := 1; i < len(stepOrder); i++ {
		if stepOrder[i] == step {
			return stepOrder[i-1]
		}
	}
	return domain.StepDrafted
}

// guard tracks listings with a run executing in this process.
type guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func newGuard() *guard {
	return &guard{busy: make(map[string]struct{})}
}

func (g *guard) acquire(listingID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[listingID]; ok {
		return false
	}
	g.busy[listingID] = struct{}{}
	return true
}

func (g *guard) release(listingID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, listingID)
}
