package engine

import (
	"context"

	"github.com/donaldgifford/car-deal-finder/internal/metrics"
	"github.com/donaldgifford/car-deal-finder/internal/notify"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// WithNotifier enables deal alerts. After each scoring pass, listings whose
// score reaches minScore for the first time are sent as one batch.
func WithNotifier(n notify.Notifier, searchTerm string, minScore int) EngineOption {
	return func(e *Engine) {
		e.notifier = n
		e.searchTerm = searchTerm
		e.alertMinScore = minScore
	}
}

// newDeals returns alerts for listings that crossed the alert threshold in
// this pass. listings and scored are index-aligned.
func (eng *Engine) newDeals(listings []domain.Listing, scored []score.ScoredListing) []notify.AlertPayload {
	var alerts []notify.AlertPayload
	for i := range scored {
		total := scored[i].Composite.Total
		if total < eng.alertMinScore {
			continue
		}
		prev := listings[i].Score
		if prev != nil && *prev >= eng.alertMinScore {
			continue
		}
		l := listings[i]
		l.Score = &total
		alerts = append(alerts, notify.NewAlertPayload(eng.searchTerm, &l))
	}
	return alerts
}

// sendDeals delivers alerts. Delivery failures are logged, never returned:
// the scores are already persisted.
func (eng *Engine) sendDeals(ctx context.Context, alerts []notify.AlertPayload) {
	if len(alerts) == 0 {
		return
	}
	if err := eng.notifier.SendBatchAlert(ctx, alerts, eng.searchTerm); err != nil {
		eng.log.Error("sending deal alerts", "count", len(alerts), "error", err)
		return
	}
	metrics.DealAlertsTotal.Add(float64(len(alerts)))
	eng.log.Info("deal alerts sent", "count", len(alerts), "min_score", eng.alertMinScore)
}
