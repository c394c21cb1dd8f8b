package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// ListJobs returns every scheduled job with its most recent run.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobStatus, error) {
	var jobs []domain.JobStatus
	if err := c.get(ctx, "/api/v1/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobHistory returns the run history for a specific scheduled job. A
// zero limit uses the server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := fmt.Sprintf("/api/v1/jobs/%s", url.PathEscape(jobName))
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
