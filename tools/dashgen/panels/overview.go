package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// probe is a red/green stat over a 0/1 probe gauge.
func probe(title, description, metric string) *stat.PanelBuilder {
	return single(title, description, sel(metric)).
		Thresholds(redUntil(1)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat returns a stat panel showing the health check status.
func HealthzStat() *stat.PanelBuilder {
	return probe("Healthz", "Health check status (1 = ok, 0 = failing)", "car_deal_finder_healthz_up")
}

// ReadyzStat returns a stat panel showing the readiness check status.
func ReadyzStat() *stat.PanelBuilder {
	return probe("Readyz", "Readiness check status (1 = ready, 0 = not ready)", "car_deal_finder_readyz_up")
}

// ListingsStat returns a stat panel showing how many listings the last
// scoring pass covered.
func ListingsStat() *stat.PanelBuilder {
	return single("Listings", "Listings in the most recent scoring pass", sel("car_deal_finder_listings")).
		Thresholds(greenOnly()).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start", `time() - `+sel("process_start_time_seconds")).
		Unit("s").
		Thresholds(greenOnly()).
		GraphMode(common.BigValueGraphModeNone)
}
