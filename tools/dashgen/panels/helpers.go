// Package panels provides Grafana dashboard panel builders for
// car-deal-finder metrics.
package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Job is the Prometheus scrape job name for the service.
const Job = "car-deal-finder"

// Grid sizes on Grafana's 24 column layout. Stats sit four to a row, charts
// two or three.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8

	ThirdWidth = 8
	FullWidth  = 24
)

// DSRef returns a datasource reference pointing at the ${datasource}
// template variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery builds a Prometheus query target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// sel restricts metric to the service's scrape job.
func sel(metric string) string {
	return fmt.Sprintf(`%s{job=%q}`, metric, Job)
}

// hourly sums the increase of a counter or histogram series over the last
// hour, grouped by the given label.
func hourly(metric, by string) string {
	return fmt.Sprintf(`sum(increase(%s[1h])) by (%s)`, sel(metric), by)
}

// quantile is histogram_quantile over a duration histogram's buckets.
func quantile(q float64, histogram, window string) string {
	return fmt.Sprintf(
		`histogram_quantile(%.2f, sum(rate(%s[%s])) by (le))`,
		q, sel(histogram+"_bucket"), window,
	)
}

// trend is a palette coloured chart for throughput style series, where no
// value is bad on its own. calcs picks the legend table columns. Callers set
// the span.
func trend(title, description, unit string, calcs ...string) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Unit(unit).
		FillOpacity(10).
		LineWidth(2).
		Legend(tableLegend(calcs...)).
		Tooltip(multiTooltip()).
		Thresholds(greenOnly()).
		ColorScheme(colorBy(dashboard.FieldColorModeIdPaletteClassic))
}

// watch is a chart coloured by thresholds: yellow from warn, red from crit.
func watch(title, description, unit string, warn, crit float64) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Unit(unit).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(steps(
			dashboard.Threshold{Color: "green"},
			dashboard.Threshold{Value: cog.ToPtr(warn), Color: "yellow"},
			dashboard.Threshold{Value: cog.ToPtr(crit), Color: "red"},
		)).
		ColorScheme(colorBy(dashboard.FieldColorModeIdThresholds))
}

// single is a stat panel over one expression.
func single(title, description, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		ColorScheme(colorBy(dashboard.FieldColorModeIdThresholds))
}

func steps(s ...dashboard.Threshold) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(s)
}

func greenOnly() cog.Builder[dashboard.ThresholdsConfig] {
	return steps(dashboard.Threshold{Color: "green"})
}

// redUntil is red below v and green from v up, for 0/1 probe gauges.
func redUntil(v float64) cog.Builder[dashboard.ThresholdsConfig] {
	return steps(
		dashboard.Threshold{Color: "red"},
		dashboard.Threshold{Value: cog.ToPtr(v), Color: "green"},
	)
}

func colorBy(mode dashboard.FieldColorModeId) cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(mode)
}

func tableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

func multiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
