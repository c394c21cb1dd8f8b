// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/maardu-realty/tools/dashgen/panels"
)

// UID is the stable dashboard identifier used for provisioning.
const UID = "mr-overview"

// BuildOverview constructs the Maardu Realty overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Maardu Realty Overview").
		Uid(UID).
		Tags([]string{"mr", "maardu-realty"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CachedListingsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.PaymentRoutes()))

	// Row 3: Marketplace API.
	b.WithRow(dashboard.NewRowBuilder("Marketplace API").
		WithPanel(panels.MarketplaceCallsRate()).
		WithPanel(panels.MarketplaceErrorRate()).
		WithPanel(panels.MarketplaceLatency()))

	// Row 4: Listings.
	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.LastRefresh()).
		WithPanel(panels.RefreshOutcomes()).
		WithPanel(panels.CachedListings()))

	// Row 5: Payments.
	b.WithRow(dashboard.NewRowBuilder("Payments").
		WithPanel(panels.PipelineSuccessRatio()).
		WithPanel(panels.PipelineRuns()).
		WithPanel(panels.StepDuration()).
		WithPanel(panels.StepRetries()))

	// Row 6: Expirations.
	b.WithRow(dashboard.NewRowBuilder("Expirations").
		WithPanel(panels.NextExpirationCheck()).
		WithPanel(panels.ExpirationEmails()).
		WithPanel(panels.JobDuration()))

	// Row 7: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
