package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NextExpirationCheck returns a stat panel showing time until the next
// scheduled expiration check.
func NextExpirationCheck() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Expiration Check").
		Description("Time until the next scheduled expiration check").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(Sel("mr_scheduler_next_expiration_check_timestamp")+` - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// ExpirationEmails returns a timeseries panel showing expiration emails per
// day split into sent, skipped, and failed.
func ExpirationEmails() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Expiration Emails / day").
		Description("Expired listings seen and the emails sent, deduplicated, or failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(`+Sel("mr_expired_listings_seen_total")+`[1d])`, "expired", "A")).
		WithTarget(PromQuery(`increase(`+Sel("mr_expiration_emails_sent_total")+`[1d])`, "sent", "B")).
		WithTarget(PromQuery(`increase(`+Sel("mr_expiration_emails_skipped_total")+`[1d])`, "skipped", "C")).
		WithTarget(PromQuery(`increase(`+Sel("mr_expiration_email_failures_total")+`[1d])`, "failed", "D")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// JobDuration returns a timeseries panel showing scheduled job duration by
// job name.
func JobDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Job Duration (p95)").
		Description("95th percentile scheduled job duration by job").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.95, "mr_scheduler_job_duration_seconds", "job"), "{{job}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
