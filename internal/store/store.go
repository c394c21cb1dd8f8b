// Package store defines the datastore abstraction for maardu-realty.
// Business logic depends on the Store interface, never on the Postgres
// implementation, so pipeline and scheduler tests run against mocks.
package store

import (
	"context"
	"time"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// Store defines all data access operations for maardu-realty.
type Store interface {
	// Pipeline runs
	CreatePipelineRun(ctx context.Context, r *domain.PipelineRun) error
	GetPipelineRun(ctx context.Context, id string) (*domain.PipelineRun, error)
	UpdatePipelineRun(ctx context.Context, r *domain.PipelineRun) error
	ListPipelineRuns(ctx context.Context, userID string, limit int) ([]domain.PipelineRun, error)
	ListStalledPipelineRuns(ctx context.Context, olderThan time.Duration, limit int) ([]domain.PipelineRun, error)

	// Expiration notices
	ClaimExpirationNotice(ctx context.Context, listingID, userID string, day time.Time) (bool, error)
	ReleaseExpirationNotice(ctx context.Context, listingID string, day time.Time) error

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

// NoticeDay truncates t to the UTC calendar day used as the expiration
// notice dedup key.
func NoticeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
