package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ListingsRate returns a timeseries panel showing ingested listings per minute.
func ListingsRate() *timeseries.PanelBuilder {
	return trend("Listings / min", "Listings stored by the ingest endpoint", "short", "mean", "max").
		Span(TSWidth).
		WithTarget(PromQuery(`car_deal_finder:ingest_listings:rate5m * 60`, "listings/min", "A")).
		DrawStyle(common.GraphDrawStyleLine)
}

// IngestionErrors returns a timeseries panel showing listings that failed
// to store.
func IngestionErrors() *timeseries.PanelBuilder {
	return watch("Ingest Errors", "Listings rejected by the store per second", "short", 0.01, 0.1).
		Span(TSWidth).
		WithTarget(PromQuery(`car_deal_finder:ingest_errors:rate5m`, "errors/s", "A")).
		DrawStyle(common.GraphDrawStyleBars)
}
