package main

import "errors"

// KnownMetrics is the set of metric names exported by maardu-realty
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"mr_http_request_duration_seconds": true,
	"mr_http_requests_total":           true,

	// Health metrics.
	"mr_healthz_up": true,
	"mr_readyz_up":  true,

	// Marketplace API metrics.
	"mr_marketplace_request_duration_seconds": true,
	"mr_marketplace_rate_limit_waits_total":   true,

	// Listing store metrics.
	"mr_listings_cached":                 true,
	"mr_listings_refresh_total":          true,
	"mr_listings_last_refresh_timestamp": true,

	// Payment pipeline metrics.
	"mr_pipeline_runs_total":            true,
	"mr_pipeline_step_duration_seconds": true,
	"mr_pipeline_step_retries_total":    true,
	"mr_pipeline_resumed_total":         true,

	// Expiration metrics.
	"mr_expired_listings_seen_total":     true,
	"mr_expiration_emails_sent_total":    true,
	"mr_expiration_emails_skipped_total": true,
	"mr_expiration_email_failures_total": true,

	// Scheduler metrics.
	"mr_scheduler_job_duration_seconds":            true,
	"mr_scheduler_next_expiration_check_timestamp": true,

	// Notification metrics.
	"mr_notifications_sent_total":      true,
	"mr_notification_failures_total":   true,
	"mr_notification_duration_seconds": true,

	// Recording rules.
	"mr:http_requests:rate5m":      true,
	"mr:http_errors:rate5m":        true,
	"mr:marketplace_calls:rate5m":  true,
	"mr:marketplace_errors:rate5m": true,
	"mr:pipeline_runs:rate5m":      true,
	"mr:pipeline_failures:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
