package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastRefresh returns a stat panel showing the age of the listing snapshot.
func LastRefresh() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Snapshot Age").
		Description("Time since the listing snapshot was last refreshed").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(`time() - `+Sel("mr_listings_last_refresh_timestamp"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1800, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshOutcomes returns a timeseries panel showing listing refreshes per
// hour by outcome.
func RefreshOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refreshes / h").
		Description("Listing store refreshes per hour by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("mr_listings_refresh_total")+`[1h])) by (outcome)`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// CachedListings returns a timeseries panel tracking the snapshot size.
func CachedListings() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Snapshot Size").
		Description("Listings held in the cached snapshot over time").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Sel("mr_listings_cached"), "listings", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
