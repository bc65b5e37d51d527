package rules

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns a PrometheusRule CR containing alert rules for
// car-deal-finder operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("cdf-alerts", RuleGroup{
		Name: "cdf-alerts",
		Rules: []Rule{
			alert("CdfDown",
				`absent(up{job="car-deal-finder"})`, "2m", "critical",
				"Car Deal Finder is down",
				"The car-deal-finder job has been absent for more than 2 minutes."),
			alert("CdfReadinessDown",
				`car_deal_finder_readyz_up == 0`, "2m", "critical",
				"Car Deal Finder readiness check is failing",
				"The readiness probe has been reporting not-ready for more than 2 minutes."),
			alert("CdfHighErrorRate",
				`car_deal_finder:http_errors:rate5m / car_deal_finder:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on Car Deal Finder",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("CdfIngestErrors",
				`car_deal_finder:ingest_errors:rate5m > 0`, "5m", "warning",
				"Ingest errors detected",
				"Listings submitted for ingestion have been failing to store for more than 5 minutes."),
			alert("CdfRescoreFailures",
				`car_deal_finder:rescore_errors:rate5m > 0`, "10m", "warning",
				"Scoring passes are failing",
				"Full scoring passes have been ending in errors for more than 10 minutes. Stored scores may be stale."),
			alert("CdfNoScoringPasses",
				`increase(car_deal_finder_rescore_runs_total{result="success"}[6h]) == 0`, "30m", "warning",
				"No successful scoring pass in 6 hours",
				"The scheduler has not completed a scoring pass in the last 6 hours."),
		},
	})
}
