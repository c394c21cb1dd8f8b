package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyPipelineFailure logs and discards a failure notification.
func (n *NoOpNotifier) NotifyPipelineFailure(_ context.Context, f *PipelineFailure) error {
	n.log.Debug("pipeline failure notification discarded (no backend configured)",
		"run_id", f.RunID,
		"listing_id", f.ListingID,
		"failed_step", f.FailedStep,
	)
	return nil
}

// NotifyExpirationDigest logs and discards a digest.
func (n *NoOpNotifier) NotifyExpirationDigest(_ context.Context, d *ExpirationDigest) error {
	n.log.Debug("expiration digest discarded (no backend configured)",
		"expired", d.Expired,
		"sent", d.Sent,
		"failed", d.Failed,
	)
	return nil
}
