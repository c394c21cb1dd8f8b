// Package notify delivers operator alerts: payment pipeline runs that
// failed terminally and daily expiration sweep digests.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// PipelineFailure describes a payment pipeline run that stopped at a step
// and needs operator attention.
type PipelineFailure struct {
	RunID      string
	UserID     string
	ListingID  string
	FailedStep domain.PipelineStep
	Attempts   int
	Error      string
	At         time.Time
}

// ExpirationDigest summarizes one expiration sweep.
type ExpirationDigest struct {
	Day            time.Time
	Expired        int
	Sent           int
	Skipped        int
	Failed         int
	FailedListings []string
}

// Notifier defines the interface for sending operator notifications.
type Notifier interface {
	NotifyPipelineFailure(ctx context.Context, f *PipelineFailure) error
	NotifyExpirationDigest(ctx context.Context, d *ExpirationDigest) error
}
