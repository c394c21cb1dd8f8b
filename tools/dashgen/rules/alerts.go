package rules

// AlertRules returns the operational alerts for the portal, its marketplace
// dependency, the payment pipeline, and the expiration watcher.
func AlertRules() PrometheusRule {
	return newPrometheusRule("mr-alerts", RuleGroup{
		Name: "mr-alerts",
		Rules: []Rule{
			alert("MrDown", `absent(up{job="maardu-realty"})`, "2m", SeverityCritical,
				"Maardu Realty portal is down",
				"The maardu-realty job has been absent for more than 2 minutes."),
			alert("MrReadinessDown", `mr_readyz_up == 0`, "2m", SeverityCritical,
				"Maardu Realty readiness check is failing",
				"The readiness probe has been reporting not-ready for more than 2 minutes."),
			alert("MrHighErrorRate", `mr:http_errors:rate5m / mr:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
				"High HTTP error rate on Maardu Realty",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("MrMarketplaceErrors",
				`sum(mr:marketplace_errors:rate5m) / sum(mr:marketplace_calls:rate5m) > 0.1`, "5m", SeverityWarning,
				"Marketplace API calls are failing",
				"More than 10% of marketplace API calls have failed over the last 5 minutes."),
			alert("MrPaymentPipelineFailures", `mr:pipeline_failures:rate5m > 0`, "10m", SeverityCritical,
				"Payment pipeline runs are failing",
				"Payment runs have been ending in the failed step for 10 minutes. "+
					"Failed runs can be resumed once the marketplace recovers."),
			alert("MrListingsStale", `time() - mr_listings_last_refresh_timestamp > 3600`, "10m", SeverityWarning,
				"Listing snapshot is stale",
				"The listing store has not refreshed from the marketplace for more than an hour."),
			alert("MrExpirationCheckMissed",
				`time() - mr_scheduler_next_expiration_check_timestamp > 3600`, "5m", SeverityWarning,
				"Daily expiration check did not run",
				"The scheduled expiration check is more than an hour overdue."),
			alert("MrExpirationEmailFailures", `increase(mr_expiration_email_failures_total[1h]) > 0`, "0m",
				SeverityWarning,
				"Expiration emails failed to send",
				"One or more expiration emails failed. A later check the same day retries them."),
			alert("MrNotificationFailures", `increase(mr_notification_failures_total[5m]) > 0`, "1m", SeverityWarning,
				"Notification delivery failures detected",
				"One or more operator notifications (Discord webhooks) have failed to send."),
		},
	})
}
