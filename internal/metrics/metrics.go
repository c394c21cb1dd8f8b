// Package metrics defines Prometheus metrics for maardu-realty.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mr"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded, 0 otherwise.",
	})
)

// Marketplace client metrics.
var (
	MarketplaceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "marketplace_request_duration_seconds",
		Help:      "Duration of remote marketplace calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	MarketplaceRateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_rate_limit_waits_total",
		Help:      "Total number of marketplace calls delayed by the outbound rate limiter.",
	})
)

// Listing store metrics.
var (
	ListingsCached = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "listings_cached",
		Help:      "Number of listings in the current cached snapshot.",
	})

	ListingsRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_refresh_total",
		Help:      "Total number of listing store refreshes by outcome.",
	}, []string{"outcome"})

	ListingsLastRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "listings_last_refresh_timestamp",
		Help:      "Unix timestamp of the last successful listing refresh.",
	})
)

// Payment pipeline metrics.
var (
	PipelineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_runs_total",
		Help:      "Total number of payment pipeline runs by final outcome.",
	}, []string{"outcome"})

	PipelineStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pipeline_step_duration_seconds",
		Help:      "Duration of payment pipeline steps in seconds, including retries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step"})

	PipelineStepRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_step_retries_total",
		Help:      "Total number of payment pipeline step retries.",
	}, []string{"step"})

	PipelineResumedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_resumed_total",
		Help:      "Total number of payment pipeline runs resumed from a persisted step.",
	})
)

// Expiration watcher metrics.
var (
	ExpiredListingsSeenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expired_listings_seen_total",
		Help:      "Total number of expired listings reported by the marketplace.",
	})

	ExpirationEmailsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expiration_emails_sent_total",
		Help:      "Total number of expiration emails requested.",
	})

	ExpirationEmailsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expiration_emails_skipped_total",
		Help:      "Total number of expiration emails skipped because the owner was already notified today.",
	})

	ExpirationEmailFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expiration_email_failures_total",
		Help:      "Total number of failed expiration email requests.",
	})
)

// Scheduler metrics.
var (
	SchedulerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scheduler_job_duration_seconds",
		Help:      "Duration of scheduled jobs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job", "status"})

	SchedulerNextExpirationTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_expiration_check_timestamp",
		Help:      "Unix timestamp of the next scheduled expiration check.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of operator notifications sent.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of operator notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of operator notification webhook calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
