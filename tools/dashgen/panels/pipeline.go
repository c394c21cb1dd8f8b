package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PipelineSuccessRatio returns a stat panel showing the share of payment
// pipeline runs that completed over the last day.
func PipelineSuccessRatio() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Payment Success (24h)").
		Description("Completed payment runs as a percentage of all finished runs").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("mr_pipeline_runs_total", `outcome="completed"`)+`[24h])) / sum(increase(`+
				Sel("mr_pipeline_runs_total")+`[24h])) * 100`,
			"", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(95)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// PipelineRuns returns a timeseries panel showing finished payment runs per
// minute by outcome.
func PipelineRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Payment Runs / min").
		Description("Finished payment pipeline runs per minute by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth * 3).
		WithTarget(PromQuery(`sum(mr:pipeline_runs:rate5m) by (outcome) * 60`, "{{outcome}}", "A")).
		WithTarget(PromQuery(`rate(`+Sel("mr_pipeline_resumed_total")+`[5m]) * 60`, "resumed", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StepDuration returns a timeseries panel showing p95 duration per payment
// step, retries included.
func StepDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Step Duration (p95)").
		Description("95th percentile payment step duration, including retries").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.95, "mr_pipeline_step_duration_seconds", "step"), "{{step}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StepRetries returns a timeseries panel showing step retries per minute.
func StepRetries() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Step Retries / min").
		Description("Payment step retries per minute by step").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(`+Sel("mr_pipeline_step_retries_total")+`[5m])) by (step) * 60`,
			"{{step}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
