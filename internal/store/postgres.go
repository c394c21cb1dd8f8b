package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

const (
	defaultPoolSize = 10

	// pgUniqueViolation is the SQLSTATE for unique_violation.
	pgUniqueViolation = "23505"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. A
// pool_max_conns parameter in connString overrides the default pool size.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreatePipelineRun inserts a new run and fills in its ID and timestamps.
// A second non-terminal run for the same listing yields a ConflictError.
func (s *PostgresStore) CreatePipelineRun(ctx context.Context, r *domain.PipelineRun) error {
	args := pgx.NamedArgs{
		"user_id":    r.UserID,
		"listing_id": r.ListingID,
		"step":       string(r.Step),
		"draft":      r.Draft,
		"attempts":   r.Attempts,
	}

	err := s.pool.QueryRow(ctx, queryInsertPipelineRun, args).Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return apperrors.NewConflictError("listing "+r.ListingID, "a payment is already being processed")
	}
	if err != nil {
		return fmt.Errorf("inserting pipeline run: %w", err)
	}
	return nil
}

// GetPipelineRun retrieves a run by ID. An ID that is not a UUID cannot name
// a run and is reported as not found without a round trip.
func (s *PostgresStore) GetPipelineRun(ctx context.Context, id string) (*domain.PipelineRun, error) {
	if uuid.Validate(id) != nil {
		return nil, apperrors.NewNotFoundError("pipeline run", id)
	}

	r := &domain.PipelineRun{}
	err := scanPipelineRun(s.pool.QueryRow(ctx, queryGetPipelineRun, id), r)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("pipeline run", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting pipeline run: %w", err)
	}
	return r, nil
}

// UpdatePipelineRun persists the mutable fields of a run: its step marker,
// invoice, attempt count, and failure details.
func (s *PostgresStore) UpdatePipelineRun(ctx context.Context, r *domain.PipelineRun) error {
	args := pgx.NamedArgs{
		"id":           r.ID,
		"step":         string(r.Step),
		"failed_step":  string(r.FailedStep),
		"invoice":      r.Invoice,
		"attempts":     r.Attempts,
		"last_error":   r.LastError,
		"completed_at": r.CompletedAt,
	}

	err := s.pool.QueryRow(ctx, queryUpdatePipelineRun, args).Scan(&r.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFoundError("pipeline run", r.ID)
	case isUniqueViolation(err):
		return apperrors.NewConflictError("listing "+r.ListingID, "another payment is in progress")
	case err != nil:
		return fmt.Errorf("updating pipeline run: %w", err)
	}
	return nil
}

// ListPipelineRuns returns a user's runs, newest first.
func (s *PostgresStore) ListPipelineRuns(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.PipelineRun, error) {
	return s.queryPipelineRuns(ctx, queryListPipelineRuns, userID, limit)
}

// ListStalledPipelineRuns returns non-terminal runs that have not advanced
// for at least olderThan, oldest first.
func (s *PostgresStore) ListStalledPipelineRuns(
	ctx context.Context,
	olderThan time.Duration,
	limit int,
) ([]domain.PipelineRun, error) {
	cutoff := time.Now().Add(-olderThan)
	return s.queryPipelineRuns(ctx, queryListStalledPipelineRuns, cutoff, limit)
}

// ClaimExpirationNotice records that listingID's owner is being notified on
// day. It returns false when the notice was already claimed.
func (s *PostgresStore) ClaimExpirationNotice(
	ctx context.Context,
	listingID string,
	userID string,
	day time.Time,
) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryClaimExpirationNotice, listingID, NoticeDay(day), userID)
	if err != nil {
		return false, fmt.Errorf("claiming expiration notice: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseExpirationNotice drops a claim so the notice is retried.
func (s *PostgresStore) ReleaseExpirationNotice(
	ctx context.Context,
	listingID string,
	day time.Time,
) error {
	if _, err := s.pool.Exec(ctx, queryReleaseExpirationNotice, listingID, NoticeDay(day)); err != nil {
		return fmt.Errorf("releasing expiration notice: %w", err)
	}
	return nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

func (s *PostgresStore) queryPipelineRuns(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.PipelineRun, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying pipeline runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.PipelineRun{}
	for rows.Next() {
		var r domain.PipelineRun
		if err := scanPipelineRun(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning pipeline run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanPipelineRun(row scannable, r *domain.PipelineRun) error {
	var step, failedStep string
	if err := row.Scan(
		&r.ID, &r.UserID, &r.ListingID, &step, &failedStep, &r.Draft, &r.Invoice,
		&r.Attempts, &r.LastError, &r.CreatedAt, &r.UpdatedAt, &r.CompletedAt,
	); err != nil {
		return err
	}
	r.Step = domain.PipelineStep(step)
	r.FailedStep = domain.PipelineStep(failedStep)
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
