package store

// Pipeline run queries.
const (
	pipelineRunColumns = `
		id, user_id, listing_id, step, failed_step, draft, invoice,
		attempts, last_error, created_at, updated_at, completed_at`

	queryInsertPipelineRun = `
		INSERT INTO pipeline_runs (user_id, listing_id, step, draft, attempts)
		VALUES (@user_id, @listing_id, @step, @draft, @attempts)
		RETURNING id, created_at, updated_at`

	queryGetPipelineRun = `
		SELECT` + pipelineRunColumns + `
		FROM pipeline_runs
		WHERE id = $1`

	queryUpdatePipelineRun = `
		UPDATE pipeline_runs SET
			step         = @step,
			failed_step  = @failed_step,
			invoice      = @invoice,
			attempts     = @attempts,
			last_error   = @last_error,
			completed_at = @completed_at,
			updated_at   = now()
		WHERE id = @id
		RETURNING updated_at`

	queryListPipelineRuns = `
		SELECT` + pipelineRunColumns + `
		FROM pipeline_runs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryListStalledPipelineRuns = `
		SELECT` + pipelineRunColumns + `
		FROM pipeline_runs
		WHERE step NOT IN ('completed', 'failed')
		  AND updated_at < $1
		ORDER BY updated_at ASC
		LIMIT $2`
)

// Expiration notice queries.
const (
	queryClaimExpirationNotice = `
		INSERT INTO expiration_notices (listing_id, day, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (listing_id, day) DO NOTHING`

	queryReleaseExpirationNotice = `
		DELETE FROM expiration_notices WHERE listing_id = $1 AND day = $2`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
