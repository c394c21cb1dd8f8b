package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	apiMocks "github.com/donaldgifford/maardu-realty/internal/marketplace/mocks"
	"github.com/donaldgifford/maardu-realty/internal/metrics"
	notifyMocks "github.com/donaldgifford/maardu-realty/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/maardu-realty/internal/store/mocks"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

type resumerFunc func(ctx context.Context, olderThan time.Duration) (int, error)

func (f resumerFunc) ResumeStalled(ctx context.Context, olderThan time.Duration) (int, error) {
	return f(ctx, olderThan)
}

type refresherFunc func(ctx context.Context) (int, error)

func (f refresherFunc) Refresh(ctx context.Context) (int, error) { return f(ctx) }

// newSchedulerTestEngine returns a test engine plus the mocks behind it.
func newSchedulerTestEngine(t *testing.T) (*Engine, *apiMocks.MockAPI, *storeMocks.MockStore) {
	t.Helper()
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	return newTestEngine(api, ms, mn), api, ms
}

func testSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		ExpirationInterval:      24 * time.Hour,
		PipelineResumeInterval:  5 * time.Minute,
		ListingsRefreshInterval: 10 * time.Minute,
		JobTimeout:              time.Hour,
		StallAfter:              10 * time.Minute,
	}
}

func noopResumer() resumerFunc {
	return func(context.Context, time.Duration) (int, error) { return 0, nil }
}

func noopRefresher() refresherFunc {
	return func(context.Context) (int, error) { return 0, nil }
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  func(*SchedulerConfig)
		opts []SchedulerOption
		want int
	}{
		{
			name: "expiration only",
			want: 1,
		},
		{
			name: "all jobs",
			opts: []SchedulerOption{WithStalledResumer(noopResumer()), WithListingRefresher(noopRefresher())},
			want: 3,
		},
		{
			name: "refresh disabled by interval",
			cfg:  func(c *SchedulerConfig) { c.ListingsRefreshInterval = -1 },
			opts: []SchedulerOption{WithStalledResumer(noopResumer()), WithListingRefresher(noopRefresher())},
			want: 2,
		},
		{
			name: "nothing enabled",
			cfg:  func(c *SchedulerConfig) { c.ExpirationInterval = 0 },
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, _, ms := newSchedulerTestEngine(t)
			cfg := testSchedulerConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}

			sched, err := NewScheduler(eng, ms, cfg, quietLogger(), tt.opts...)
			require.NoError(t, err)
			assert.Len(t, sched.Entries(), tt.want)
		})
	}
}

func TestScheduler_StoresEntryIDs(t *testing.T) {
	t.Parallel()

	eng, _, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger(),
		WithStalledResumer(noopResumer()),
		WithListingRefresher(noopRefresher()),
	)
	require.NoError(t, err)

	assert.NotZero(t, sched.expirationEntryID)
	assert.NotZero(t, sched.resumeEntryID)
	assert.NotZero(t, sched.refreshEntryID)
	assert.NotEqual(t, sched.expirationEntryID, sched.resumeEntryID)
}

func TestNewScheduler_Defaults(t *testing.T) {
	t.Parallel()

	eng, _, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, SchedulerConfig{ExpirationInterval: time.Hour}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, defaultJobTimeout, sched.cfg.JobTimeout)
	assert.Equal(t, defaultStallAfter, sched.cfg.StallAfter)
	assert.NotEmpty(t, sched.holder)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, _, ms := newSchedulerTestEngine(t)

	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, 2*time.Hour).Return(0, nil).Once()
	ms.EXPECT().AcquireSchedulerLock(mock.Anything, JobPipelineResume, mock.Anything, time.Hour).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobPipelineResume).Return("run-1", nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 2).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobPipelineResume, mock.Anything).Return(nil).Once()

	var resumed atomic.Int32
	resumer := resumerFunc(func(_ context.Context, olderThan time.Duration) (int, error) {
		resumed.Add(1)
		assert.Equal(t, 10*time.Minute, olderThan)
		return 2, nil
	})

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger(), WithStalledResumer(resumer))
	require.NoError(t, err)

	sched.Start()
	require.Eventually(t, func() bool { return resumed.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx := sched.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	eng, _, ms := newSchedulerTestEngine(t)
	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, mock.Anything).Return(0, nil).Once()

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	next := ptestutil.ToFloat64(metrics.SchedulerNextExpirationTimestamp)
	assert.Greater(t, next, float64(time.Now().Unix()), "next expiration check should be in the future")
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	eng, _, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, 5*time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", "succeeded", "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(ctx context.Context) (int, error) {
		called = true
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	eng, _, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", "failed", jobErr.Error(), 0).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", mock.Anything).
		Return(nil).Once()

	err = sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 0, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockHeld(t *testing.T) {
	t.Parallel()

	eng, _, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "busy-job", mock.Anything, mock.Anything).
		Return(false, nil).Once()

	err = sched.runJob(context.Background(), "busy-job", time.Minute, func(context.Context) (int, error) {
		t.Fatal("job must not run without the lock")
		return 0, nil
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestScheduler_RunJob_LedgerFailureStillRuns(t *testing.T) {
	t.Parallel()

	eng, _, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "job").Return("", errors.New("disk full")).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "job", mock.Anything).Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "job", time.Minute, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunExpirationCheck(t *testing.T) {
	t.Parallel()

	eng, api, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, JobExpirationCheck, mock.Anything, time.Hour).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobExpirationCheck).Return("run-3", nil).Once()
	api.EXPECT().CheckExpiredListings(mock.Anything).Return([]domain.Listing{}, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-3", "succeeded", "", 0).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobExpirationCheck, mock.Anything).Return(nil).Once()

	summary, err := sched.RunExpirationCheck(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Zero(t, summary.Expired)
}

func TestScheduler_RunListingsRefresh(t *testing.T) {
	t.Parallel()

	eng, _, ms := newSchedulerTestEngine(t)

	var refreshed atomic.Bool
	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger(),
		WithListingRefresher(refresherFunc(func(context.Context) (int, error) {
			refreshed.Store(true)
			return 0, errors.New("marketplace down")
		})),
	)
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, JobListingsRefresh, mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, JobListingsRefresh).Return("run-4", nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-4", "failed", "marketplace down", 0).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, JobListingsRefresh, mock.Anything).Return(nil).Once()

	sched.runListingsRefresh()
	assert.True(t, refreshed.Load())
}

func TestScheduler_RecoverStaleJobs(t *testing.T) {
	t.Parallel()

	eng, _, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}

func TestScheduler_StartLogsOnce(t *testing.T) {
	t.Parallel()

	eng, _, ms := newSchedulerTestEngine(t)
	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, 2*time.Hour).Return(0, nil).Once()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), log)
	require.NoError(t, err)

	sched.Start()
	<-sched.Stop().Done()

	assert.Equal(t, 1, strings.Count(buf.String(), `"msg":"scheduler started"`))
	assert.Contains(t, buf.String(), `"entries":1`)
}
