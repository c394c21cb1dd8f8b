//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/store"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("mr_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testRun(listingID string) *domain.PipelineRun {
	return &domain.PipelineRun{
		UserID:    "u-1",
		ListingID: listingID,
		Step:      domain.StepDrafted,
		Draft: domain.InvoiceDraft{
			PaymentInfo: domain.PaymentInfo{ListingID: listingID, Amount: 29.99, Currency: "EUR"},
			InvoiceType: domain.InvoiceBusiness,
			BusinessDetails: &domain.BusinessDetails{
				Name: "Maardu Kinnisvara OÜ", RegistryCode: "12345678", Address: "Keskväljak 1",
			},
		},
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_PipelineRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		r := testRun("l-create")
		require.NoError(t, s.CreatePipelineRun(ctx, r))
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.CreatedAt.IsZero())

		got, err := s.GetPipelineRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StepDrafted, got.Step)
		assert.Equal(t, domain.InvoiceBusiness, got.Draft.InvoiceType)
		require.NotNil(t, got.Draft.BusinessDetails)
		assert.Equal(t, "12345678", got.Draft.BusinessDetails.RegistryCode)
		assert.Nil(t, got.Invoice)
	})

	t.Run("second active run for listing conflicts", func(t *testing.T) {
		require.NoError(t, s.CreatePipelineRun(ctx, testRun("l-dup")))

		err := s.CreatePipelineRun(ctx, testRun("l-dup"))
		var conflict *apperrors.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("update persists invoice and completion", func(t *testing.T) {
		r := testRun("l-update")
		require.NoError(t, s.CreatePipelineRun(ctx, r))

		now := time.Now()
		r.Step = domain.StepCompleted
		r.Attempts = 4
		r.CompletedAt = &now
		r.Invoice = &domain.Invoice{
			ID:  "inv-1",
			Raw: json.RawMessage(`{"id":"inv-1","extra":true}`),
		}
		require.NoError(t, s.UpdatePipelineRun(ctx, r))

		got, err := s.GetPipelineRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StepCompleted, got.Step)
		require.NotNil(t, got.Invoice)
		assert.JSONEq(t, `{"id":"inv-1","extra":true}`, string(got.Invoice.Raw))
		assert.NotNil(t, got.CompletedAt)

		// The listing is free for a new run once the previous one is terminal.
		require.NoError(t, s.CreatePipelineRun(ctx, testRun("l-update")))
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := s.GetPipelineRun(ctx, "00000000-0000-0000-0000-000000000000")
		var nf *apperrors.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("get malformed id", func(t *testing.T) {
		_, err := s.GetPipelineRun(ctx, "abc")
		var nf *apperrors.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("list by user", func(t *testing.T) {
		runs, err := s.ListPipelineRuns(ctx, "u-1", 2)
		require.NoError(t, err)
		assert.Len(t, runs, 2)
		assert.False(t, runs[0].CreatedAt.Before(runs[1].CreatedAt))
	})

	t.Run("stalled", func(t *testing.T) {
		runs, err := s.ListStalledPipelineRuns(ctx, -time.Minute, 100)
		require.NoError(t, err)
		for _, r := range runs {
			assert.False(t, r.Terminal())
		}
		assert.NotEmpty(t, runs)
	})
}

func TestPostgresStore_ExpirationNotices(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	day := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	claimed, err := s.ClaimExpirationNotice(ctx, "l-1", "u-1", day)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = s.ClaimExpirationNotice(ctx, "l-1", "u-1", day.Add(10*time.Hour))
	require.NoError(t, err)
	assert.False(t, claimed, "same UTC day is deduplicated")

	claimed, err = s.ClaimExpirationNotice(ctx, "l-1", "u-1", day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, claimed, "next day is a new notice")

	require.NoError(t, s.ReleaseExpirationNotice(ctx, "l-1", day))
	claimed, err = s.ClaimExpirationNotice(ctx, "l-1", "u-1", day)
	require.NoError(t, err)
	assert.True(t, claimed, "released claim can be taken again")
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "expiration_check")
	require.NoError(t, err)
	require.NoError(t, s.CompleteJobRun(ctx, id, "succeeded", "", 3))

	runs, err := s.ListJobRuns(ctx, "expiration_check", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 3, *runs[0].RowsAffected)

	_, err = s.InsertJobRun(ctx, "pipeline_resume")
	require.NoError(t, err)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 2)

	recovered, err := s.RecoverStaleJobRuns(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
}

func TestPostgresStore_SchedulerLock(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ok, err := s.AcquireSchedulerLock(ctx, "expiration_check", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireSchedulerLock(ctx, "expiration_check", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ReleaseSchedulerLock(ctx, "expiration_check", "a"))

	ok, err = s.AcquireSchedulerLock(ctx, "expiration_check", "b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
