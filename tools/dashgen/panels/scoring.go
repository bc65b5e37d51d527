package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RescoreRuns returns a timeseries panel showing scoring passes by trigger
// and result.
func RescoreRuns() *timeseries.PanelBuilder {
	return trend("Scoring Passes", "Scoring passes per hour by trigger and result", "short", "sum").
		Span(ThirdWidth).
		WithTarget(PromQuery(
			hourly("car_deal_finder_rescore_runs_total", "trigger, result"),
			"{{trigger}} {{result}}", "A",
		)).
		DrawStyle(common.GraphDrawStyleBars)
}

// RescoreDuration returns a timeseries panel showing the p95 duration of
// full scoring passes.
func RescoreDuration() *timeseries.PanelBuilder {
	return watch("Scoring Pass Duration", "p95 duration of full scoring passes", "s", 5, 30).
		Span(ThirdWidth).
		WithTarget(PromQuery(quantile(0.95, "car_deal_finder_rescore_duration_seconds", "1h"), "p95", "A")).
		DrawStyle(common.GraphDrawStyleLine)
}

// ConditionLabels returns a timeseries panel showing condition
// classifications by label.
func ConditionLabels() *timeseries.PanelBuilder {
	return trend("Condition Labels", "Condition texts classified per hour, by label", "short", "sum").
		Span(ThirdWidth).
		WithTarget(PromQuery(
			hourly("car_deal_finder_condition_classifications_total", "label"),
			"{{label}}", "A",
		)).
		DrawStyle(common.GraphDrawStyleBars)
}

// ScoreDistribution returns a bar gauge panel showing the distribution of
// computed listing scores across histogram buckets.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Score Distribution").
		Description("Composite scores written in the last hour, by bucket (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(hourly("car_deal_finder_scoring_distribution_bucket", "le"), "{{le}}", "A")).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(greenOnly()).
		ColorScheme(colorBy(dashboard.FieldColorModeIdPaletteClassic))
}
