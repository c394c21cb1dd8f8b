package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/api/handlers"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

type fakeJobLedger struct {
	latest  []domain.JobRun
	history []domain.JobRun
	err     error

	gotJob   string
	gotLimit int
}

func (f *fakeJobLedger) ListLatestJobRuns(context.Context) ([]domain.JobRun, error) {
	return f.latest, f.err
}

func (f *fakeJobLedger) ListJobRuns(_ context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	f.gotJob, f.gotLimit = jobName, limit
	return f.history, f.err
}

func jobRun(name, status string) domain.JobRun {
	return domain.JobRun{
		ID:        "jr-" + name,
		JobName:   name,
		StartedAt: time.Date(2026, 5, 4, 3, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func newJobsAPI(t *testing.T, ledger *fakeJobLedger) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(ledger))
	return api
}

func TestListJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		latest     []domain.JobRun
		wantStatus map[string]string
	}{
		{
			name:   "every job has run",
			latest: []domain.JobRun{jobRun("listings_refresh", "succeeded"), jobRun("expiration_check", "failed"), jobRun("pipeline_resume", "succeeded")},
			wantStatus: map[string]string{
				"expiration_check": "failed",
				"pipeline_resume":  "succeeded",
				"listings_refresh": "succeeded",
			},
		},
		{
			name:   "jobs that never ran are still listed",
			latest: []domain.JobRun{jobRun("pipeline_resume", "crashed")},
			wantStatus: map[string]string{
				"expiration_check": "",
				"pipeline_resume":  "crashed",
				"listings_refresh": "",
			},
		},
		{
			name:   "unknown ledger rows are ignored",
			latest: []domain.JobRun{jobRun("ingestion", "succeeded")},
			wantStatus: map[string]string{
				"expiration_check": "",
				"pipeline_resume":  "",
				"listings_refresh": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := newJobsAPI(t, &fakeJobLedger{latest: tt.latest}).Get("/api/v1/jobs")
			require.Equal(t, http.StatusOK, resp.Code)

			var got []domain.JobStatus
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			require.Len(t, got, 3)
			assert.Equal(t, "expiration_check", got[0].Name, "scheduler order")

			for _, st := range got {
				want := tt.wantStatus[st.Name]
				if want == "" {
					assert.Nil(t, st.LastRun, st.Name)
					continue
				}
				require.NotNil(t, st.LastRun, st.Name)
				assert.Equal(t, want, st.LastRun.Status, st.Name)
			}
		})
	}
}

func TestListJobs_LedgerError(t *testing.T) {
	t.Parallel()

	resp := newJobsAPI(t, &fakeJobLedger{err: errors.New("db down")}).Get("/api/v1/jobs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing job runs failed")
}

func TestGetJobHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		history    []domain.JobRun
		err        error
		wantStatus int
		wantJob    string
		wantLimit  int
		wantBody   string
	}{
		{
			name:       "default limit",
			path:       "/api/v1/jobs/expiration_check",
			history:    []domain.JobRun{jobRun("expiration_check", "succeeded"), jobRun("expiration_check", "failed")},
			wantStatus: http.StatusOK,
			wantJob:    "expiration_check",
			wantLimit:  20,
			wantBody:   `"status":"failed"`,
		},
		{
			name:       "custom limit",
			path:       "/api/v1/jobs/pipeline_resume?limit=5",
			wantStatus: http.StatusOK,
			wantJob:    "pipeline_resume",
			wantLimit:  5,
			wantBody:   `[]`,
		},
		{
			name:       "limit above maximum",
			path:       "/api/v1/jobs/listings_refresh?limit=500",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown job",
			path:       "/api/v1/jobs/nightly_backup",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "ledger error",
			path:       "/api/v1/jobs/expiration_check",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantJob:    "expiration_check",
			wantLimit:  20,
			wantBody:   "fetching job history failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ledger := &fakeJobLedger{history: tt.history, err: tt.err}
			resp := newJobsAPI(t, ledger).Get(tt.path)

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Equal(t, tt.wantJob, ledger.gotJob)
			assert.Equal(t, tt.wantLimit, ledger.gotLimit)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
