package main

import "errors"

// KnownMetrics is the set of metric names exported by car-deal-finder
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"car_deal_finder_http_request_duration_seconds": true,
	"car_deal_finder_http_requests_total":           true,

	// Health metrics.
	"car_deal_finder_healthz_up": true,
	"car_deal_finder_readyz_up":  true,

	// Ingestion metrics.
	"car_deal_finder_ingest_listings_total": true,
	"car_deal_finder_ingest_errors_total":   true,

	// Scoring metrics.
	"car_deal_finder_rescore_duration_seconds": true,
	"car_deal_finder_rescore_runs_total":       true,
	"car_deal_finder_listings_scored_total":    true,
	"car_deal_finder_scoring_distribution":     true,
	"car_deal_finder_listings":                 true,
	"car_deal_finder_rescore_throttled_total":  true,

	// Condition and cleanup metrics.
	"car_deal_finder_condition_classifications_total": true,
	"car_deal_finder_cleanup_deleted_total":           true,

	// Recording rules.
	"car_deal_finder:http_requests:rate5m":   true,
	"car_deal_finder:http_errors:rate5m":     true,
	"car_deal_finder:ingest_listings:rate5m": true,
	"car_deal_finder:ingest_errors:rate5m":   true,
	"car_deal_finder:rescore_errors:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
