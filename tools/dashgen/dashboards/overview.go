// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/car-deal-finder/tools/dashgen/panels"
)

// OverviewUID is the stable dashboard UID; alert annotations link to it.
const OverviewUID = "cdf-overview"

type row struct {
	title  string
	panels []cog.Builder[dashboard.Panel]
}

// overviewRows lists the rows top to bottom: service health, the HTTP API,
// listing ingestion, then scoring passes and their output.
func overviewRows() []row {
	return []row{
		{"Overview", []cog.Builder[dashboard.Panel]{
			panels.HealthzStat(),
			panels.ReadyzStat(),
			panels.ListingsStat(),
			panels.UptimeStat(),
		}},
		{"HTTP", []cog.Builder[dashboard.Panel]{
			panels.RequestRate(),
			panels.LatencyPercentiles(),
			panels.ErrorRate(),
		}},
		{"Ingestion", []cog.Builder[dashboard.Panel]{
			panels.ListingsRate(),
			panels.IngestionErrors(),
		}},
		{"Scoring", []cog.Builder[dashboard.Panel]{
			panels.RescoreRuns(),
			panels.RescoreDuration(),
			panels.ConditionLabels(),
			panels.ScoreDistribution(),
		}},
	}
}

// BuildOverview constructs the Car Deal Finder overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Car Deal Finder Overview").
		Uid(OverviewUID).
		Description("Listing ingestion, scoring passes and API health for car-deal-finder").
		Tags([]string{"cdf", "car-deal-finder"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(dashboard.NewDatasourceVariableBuilder("datasource").
			Label("Datasource").
			Type("prometheus"))

	for _, r := range overviewRows() {
		rb := dashboard.NewRowBuilder(r.title)
		for _, p := range r.panels {
			rb.WithPanel(p)
		}
		b.WithRow(rb)
	}
	return b
}
