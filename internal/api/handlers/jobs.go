package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/engine"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// scheduledJobs lists every job the scheduler can register, in display
// order.
var scheduledJobs = []string{
	engine.JobExpirationCheck,
	engine.JobPipelineResume,
	engine.JobListingsRefresh,
}

const defaultJobHistoryLimit = 20

// JobsProvider is the slice of the job run ledger the handlers read.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the scheduler's job run ledger to operators.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// ListJobsOutput holds one status per scheduled job.
type ListJobsOutput struct {
	Body []domain.JobStatus
}

// GetJobHistoryInput selects a job and how many runs to return.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name"                      enum:"expiration_check,pipeline_resume,listings_refresh"`
	Limit   int    `query:"limit"   doc:"Number of runs (default 20)" minimum:"1" maximum:"200"`
}

// GetJobHistoryOutput holds a job's runs, newest first.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

// ListJobs reports every scheduled job with its latest run. Jobs missing
// from the ledger are included with no run, so a job that never fired is
// visible rather than silently absent.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing job runs failed", err)
	}

	latest := make(map[string]domain.JobRun, len(runs))
	for _, r := range runs {
		latest[r.JobName] = r
	}

	out := make([]domain.JobStatus, 0, len(scheduledJobs))
	for _, name := range scheduledJobs {
		st := domain.JobStatus{Name: name}
		if r, ok := latest[name]; ok {
			st.LastRun = &r
		}
		out = append(out, st)
	}
	return &ListJobsOutput{Body: out}, nil
}

// GetJobHistory returns a job's runs, newest first.
func (h *JobsHandler) GetJobHistory(ctx context.Context, input *GetJobHistoryInput) (*GetJobHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultJobHistoryLimit
	}

	runs, err := h.store.ListJobRuns(ctx, input.JobName, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed", err)
	}
	if runs == nil {
		runs = []domain.JobRun{}
	}
	return &GetJobHistoryOutput{Body: runs}, nil
}

// RegisterJobRoutes registers the job ledger endpoints.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "Scheduled job status",
		Description: "Returns every scheduled job (the expiration sweep, the stalled payment sweep, " +
			"and the listing refresh) with its most recent run, if any.",
		Tags:   []string{"scheduler"},
		Errors: []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Scheduled job history",
		Description: "Returns the run history for one scheduled job, newest first.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)
}
