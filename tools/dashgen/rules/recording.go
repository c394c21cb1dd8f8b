package rules

// RecordingRules returns the pre-computed rates shared by the overview
// dashboard and the alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("mr-recording-rules", RuleGroup{
		Name: "mr-recording",
		Rules: []Rule{
			record("mr:http_requests:rate5m", `sum(rate(mr_http_requests_total[5m]))`),
			record("mr:http_errors:rate5m", `sum(rate(mr_http_requests_total{status=~"5.."}[5m]))`),
			record("mr:marketplace_calls:rate5m",
				`sum(rate(mr_marketplace_request_duration_seconds_count[5m])) by (operation)`),
			record("mr:marketplace_errors:rate5m",
				`sum(rate(mr_marketplace_request_duration_seconds_count{outcome="error"}[5m])) by (operation)`),
			record("mr:pipeline_runs:rate5m", `sum(rate(mr_pipeline_runs_total[5m])) by (outcome)`),
			record("mr:pipeline_failures:rate5m", `sum(rate(mr_pipeline_runs_total{outcome="failed"}[5m]))`),
		},
	})
}
