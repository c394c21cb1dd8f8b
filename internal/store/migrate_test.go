package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
)

func TestMigrations_Ordered(t *testing.T) {
	t.Parallel()

	names, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_initial.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestMigrations_CreateTables(t *testing.T) {
	t.Parallel()

	data, err := migrationsFS.ReadFile("migrations/001_initial.sql")
	require.NoError(t, err)

	sql := string(data)
	for _, table := range []string{"pipeline_runs", "expiration_notices", "job_runs", "scheduler_locks"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table, table)
	}
	assert.True(t, strings.Contains(sql, "PRIMARY KEY (listing_id, day)"))
}

func TestNoticeDay(t *testing.T) {
	t.Parallel()

	tallinn := time.FixedZone("EET", 2*60*60)
	got := NoticeDay(time.Date(2026, 3, 2, 1, 30, 0, 0, tallinn))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)

	same := NoticeDay(time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, got, same)
}

func TestPostgresStore_GetPipelineRun_MalformedID(t *testing.T) {
	t.Parallel()

	// No pool: a malformed ID must be answered before any query runs.
	s := &PostgresStore{}
	for _, id := range []string{"abc", "", "run-1", "0b7f2c8e-3d41-4c59-9a6e"} {
		_, err := s.GetPipelineRun(context.Background(), id)
		var notFound *apperrors.NotFoundError
		require.ErrorAs(t, err, &notFound, id)
	}
}
