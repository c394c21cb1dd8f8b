package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/metrics"
	"github.com/donaldgifford/maardu-realty/internal/store"
)

// Job names as recorded in job_runs and scheduler_locks.
const (
	JobExpirationCheck = "expiration_check"
	JobPipelineResume  = "pipeline_resume"
	JobListingsRefresh = "listings_refresh"
)

const (
	jobStatusSucceeded = "succeeded"
	jobStatusFailed    = "failed"

	defaultJobTimeout = 30 * time.Minute
	defaultStallAfter = 10 * time.Minute
	ledgerTimeout     = 5 * time.Second
)

// StalledResumer resumes payment pipeline runs that stopped mid-way.
type StalledResumer interface {
	ResumeStalled(ctx context.Context, olderThan time.Duration) (int, error)
}

// ListingRefresher reloads the cached listing set.
type ListingRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// SchedulerConfig holds the job intervals. A non-positive interval disables
// the job.
type SchedulerConfig struct {
	ExpirationInterval      time.Duration
	PipelineResumeInterval  time.Duration
	ListingsRefreshInterval time.Duration
	JobTimeout              time.Duration
	StallAfter              time.Duration
}

// SchedulerOption configures optional Scheduler jobs.
type SchedulerOption func(*Scheduler)

// WithStalledResumer enables the stalled pipeline sweep.
func WithStalledResumer(r StalledResumer) SchedulerOption {
	return func(s *Scheduler) {
		s.resumer = r
	}
}

// WithListingRefresher enables the periodic listing refresh.
func WithListingRefresher(r ListingRefresher) SchedulerOption {
	return func(s *Scheduler) {
		s.refresher = r
	}
}

// Scheduler runs the engine's periodic jobs. Every job holds a Postgres lock
// for its duration so only one replica executes it, and is recorded in the
// job_runs ledger.
type Scheduler struct {
	cron      *cron.Cron
	engine    *Engine
	store     store.Store
	resumer   StalledResumer
	refresher ListingRefresher
	log       *slog.Logger
	holder    string
	cfg       SchedulerConfig

	// ctx is the parent of every job context; Stop cancels it.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	expirationEntryID cron.EntryID
	resumeEntryID     cron.EntryID
	refreshEntryID    cron.EntryID
}

// NewScheduler creates a new Scheduler and registers its cron entries.
func NewScheduler(
	eng *Engine,
	s store.Store,
	cfg SchedulerConfig,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaultJobTimeout
	}
	if cfg.StallAfter <= 0 {
		cfg.StallAfter = defaultStallAfter
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched := &Scheduler{
		cron:   cron.New(),
		engine: eng,
		store:  s,
		log:    log,
		holder: lockHolder(),
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(sched)
	}

	var err error
	if cfg.ExpirationInterval > 0 {
		sched.expirationEntryID, err = sched.every(cfg.ExpirationInterval, sched.runExpirationCheck)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("registering %s: %w", JobExpirationCheck, err)
		}
	}
	if sched.resumer != nil && cfg.PipelineResumeInterval > 0 {
		sched.resumeEntryID, err = sched.every(cfg.PipelineResumeInterval, sched.runPipelineResume)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("registering %s: %w", JobPipelineResume, err)
		}
	}
	if sched.refresher != nil && cfg.ListingsRefreshInterval > 0 {
		sched.refreshEntryID, err = sched.every(cfg.ListingsRefreshInterval, sched.runListingsRefresh)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("registering %s: %w", JobListingsRefresh, err)
		}
	}

	return sched, nil
}

func (s *Scheduler) every(d time.Duration, fn func()) (cron.EntryID, error) {
	return s.cron.AddFunc("@every "+d.String(), fn)
}

// Start recovers job runs orphaned by a previous crash, begins running
// scheduled jobs, and kicks off one stalled-pipeline sweep immediately.
func (s *Scheduler) Start() {
	s.RecoverStaleJobRuns(s.ctx)
	s.cron.Start()
	s.SyncNextRunTimestamps()
	if s.resumeEntryID != 0 {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runPipelineResume()
		}()
	}
	s.log.Info("scheduler started", "entries", len(s.cron.Entries()))
}

// Stop cancels in-flight jobs and stops the cron. The returned context is
// done once every running job has returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	s.cancel()
	cronCtx := s.cron.Stop()

	done, finish := context.WithCancel(context.Background())
	go func() {
		<-cronCtx.Done()
		s.wg.Wait()
		finish()
	}()
	return done
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RunExpirationCheck runs the expiration sweep now under the job lock. It
// returns a ConflictError when another holder is already running it.
func (s *Scheduler) RunExpirationCheck(ctx context.Context) (*ExpirationSummary, error) {
	var summary *ExpirationSummary
	err := s.runJob(ctx, JobExpirationCheck, s.cfg.JobTimeout, func(ctx context.Context) (int, error) {
		var err error
		summary, err = s.engine.CheckExpiredListings(ctx)
		if summary == nil {
			return 0, err
		}
		return summary.Sent, err
	})
	return summary, err
}

// RecoverStaleJobRuns marks job runs left running by a crashed process as
// failed.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, 2*s.cfg.JobTimeout)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("recovered stale job runs", "count", n)
	}
}

// SyncNextRunTimestamps publishes the next expiration check time.
func (s *Scheduler) SyncNextRunTimestamps() {
	if s.expirationEntryID == 0 {
		return
	}
	entry := s.cron.Entry(s.expirationEntryID)
	if !entry.Next.IsZero() {
		metrics.SchedulerNextExpirationTimestamp.Set(float64(entry.Next.Unix()))
	}
}

func (s *Scheduler) runExpirationCheck() {
	defer s.SyncNextRunTimestamps()

	summary, err := s.RunExpirationCheck(s.ctx)
	if err != nil {
		s.logJobError(JobExpirationCheck, err)
		return
	}
	if summary != nil {
		s.log.Info("scheduled expiration check complete",
			"expired", summary.Expired,
			"sent", summary.Sent,
			"skipped", summary.Skipped,
		)
	}
}

func (s *Scheduler) runPipelineResume() {
	err := s.runJob(s.ctx, JobPipelineResume, s.cfg.JobTimeout, func(ctx context.Context) (int, error) {
		return s.resumer.ResumeStalled(ctx, s.cfg.StallAfter)
	})
	if err != nil {
		s.logJobError(JobPipelineResume, err)
	}
}

func (s *Scheduler) runListingsRefresh() {
	err := s.runJob(s.ctx, JobListingsRefresh, s.cfg.JobTimeout, func(ctx context.Context) (int, error) {
		return s.refresher.Refresh(ctx)
	})
	if err != nil {
		s.logJobError(JobListingsRefresh, err)
	}
}

func (s *Scheduler) logJobError(job string, err error) {
	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		s.log.Debug("job already running elsewhere", "job", job)
		return
	}
	s.log.Error("scheduled job failed", "job", job, "error", err)
}

// runJob executes fn under the job's scheduler lock and records the run in
// the job ledger. Ledger failures are logged but do not prevent the job from
// running.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	timeout time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, timeout)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !acquired {
		return apperrors.NewConflictError("job "+name, "already running")
	}
	defer func() {
		relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ledgerTimeout)
		defer cancel()
		if err := s.store.ReleaseSchedulerLock(relCtx, name, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Warn("recording job start", "job", name, "error", err)
	}

	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	s.log.Info("job starting", "job", name)
	rows, jobErr := fn(jobCtx)

	status, errText := jobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = jobStatusFailed, jobErr.Error()
	}
	metrics.SchedulerJobDuration.WithLabelValues(name, status).Observe(time.Since(start).Seconds())

	if runID != "" {
		ledgerCtx, cancelLedger := context.WithTimeout(context.WithoutCancel(ctx), ledgerTimeout)
		defer cancelLedger()
		if err := s.store.CompleteJobRun(ledgerCtx, runID, status, errText, rows); err != nil {
			s.log.Warn("recording job completion", "job", name, "error", err)
		}
	}

	return jobErr
}

// lockHolder identifies this process in scheduler_locks.
func lockHolder() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return host + "/" + uuid.NewString()
}
