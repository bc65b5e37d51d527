package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const requestDuration = "car_deal_finder_http_request_duration_seconds"

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return trend("Request Rate", "HTTP requests per second", "reqps", "mean", "max").
		Span(ThirdWidth).
		WithTarget(PromQuery(`car_deal_finder:http_requests:rate5m`, "req/s", "A")).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyPercentiles returns a timeseries panel showing p50, p95 and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return trend("Latency Percentiles", "HTTP request duration percentiles", "s", "mean", "max").
		Span(ThirdWidth).
		WithTarget(PromQuery(quantile(0.50, requestDuration, "5m"), "p50", "A")).
		WithTarget(PromQuery(quantile(0.95, requestDuration, "5m"), "p95", "B")).
		WithTarget(PromQuery(quantile(0.99, requestDuration, "5m"), "p99", "C")).
		DrawStyle(common.GraphDrawStyleLine)
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage. Yellow from 1%, red from the 5% the alert fires at.
func ErrorRate() *timeseries.PanelBuilder {
	return watch("Error Rate %", "HTTP 5xx responses as a percentage of all requests", "percent", 1, 5).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`car_deal_finder:http_errors:rate5m / car_deal_finder:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		DrawStyle(common.GraphDrawStyleLine)
}
