package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("cdf-recording-rules", RuleGroup{
		Name: "cdf-recording",
		Rules: []Rule{
			{
				Record: "car_deal_finder:http_requests:rate5m",
				Expr:   `sum(rate(car_deal_finder_http_requests_total[5m]))`,
			},
			{
				Record: "car_deal_finder:http_errors:rate5m",
				Expr:   `sum(rate(car_deal_finder_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "car_deal_finder:ingest_listings:rate5m",
				Expr:   `rate(car_deal_finder_ingest_listings_total[5m])`,
			},
			{
				Record: "car_deal_finder:ingest_errors:rate5m",
				Expr:   `rate(car_deal_finder_ingest_errors_total[5m])`,
			},
			{
				Record: "car_deal_finder:rescore_errors:rate5m",
				Expr:   `sum(rate(car_deal_finder_rescore_runs_total{result="error"}[5m]))`,
			},
		},
	})
}
