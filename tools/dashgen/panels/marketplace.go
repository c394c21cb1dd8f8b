package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MarketplaceCallsRate returns a timeseries panel showing marketplace API
// calls per second by operation.
func MarketplaceCallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace Calls").
		Description("Marketplace API calls per second by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum(mr:marketplace_calls:rate5m) by (operation)`, "{{operation}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MarketplaceErrorRate returns a timeseries panel showing the share of
// failed marketplace calls per operation.
func MarketplaceErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace Error %").
		Description("Failed marketplace calls as a percentage of all calls, by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(mr:marketplace_errors:rate5m) by (operation) / sum(mr:marketplace_calls:rate5m) by (operation) * 100`,
			"{{operation}}", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MarketplaceLatency returns a timeseries panel showing p95 marketplace
// call latency per operation.
func MarketplaceLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace Latency (p95)").
		Description("95th percentile marketplace call duration by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			Quantile(0.95, "mr_marketplace_request_duration_seconds", "operation"),
			"{{operation}}", "A",
		)).
		WithTarget(PromQuery(
			`rate(`+Sel("mr_marketplace_rate_limit_waits_total")+`[5m])`,
			"rate limit waits/s", "B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
