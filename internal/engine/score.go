// Package engine implements the service loops around the scoring core:
// ingestion, full scoring passes, analytics and stale listing cleanup.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/car-deal-finder/internal/metrics"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// RunRescore runs a full scoring pass over every stored listing and returns
// the number of scores written.
func (eng *Engine) RunRescore(ctx context.Context) (int, error) {
	return eng.rescore(ctx, metrics.TriggerScheduled)
}

// TriggerRescore runs a manually requested scoring pass, subject to the
// rescore rate limit.
func (eng *Engine) TriggerRescore(ctx context.Context) (int, error) {
	if !eng.limiter.Allow() {
		metrics.RescoreThrottledTotal.Inc()
		return 0, ErrRescoreThrottled
	}
	return eng.rescore(ctx, metrics.TriggerManual)
}

// rescore loads the whole collection, scores it as one snapshot and
// persists the results. Passes within this process run one at a time, and
// the store's scoring lock serializes the load and write across processes.
func (eng *Engine) rescore(ctx context.Context, trigger string) (n int, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.rescore",
		trace.WithAttributes(attribute.String("trigger", trigger)),
	)
	defer span.End()

	eng.passMu.Lock()
	defer eng.passMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.RescoreDuration.Observe(time.Since(start).Seconds())
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.RescoreRunsTotal.WithLabelValues(trigger, result).Inc()
	}()

	var (
		listings []domain.Listing
		scored   []score.ScoredListing
	)
	err = eng.store.WithScoringLock(ctx, func(ctx context.Context) error {
		var passErr error
		listings, scored, n, passErr = eng.scorePass(ctx, trigger)
		return passErr
	})
	if err != nil {
		return 0, err
	}
	if len(scored) == 0 {
		return 0, nil
	}

	metrics.ListingsScoredTotal.Add(float64(n))
	if eng.notifier != nil {
		eng.sendDeals(ctx, eng.newDeals(listings, scored))
	}
	span.SetAttributes(
		attribute.Int("listings", len(listings)),
		attribute.Int("updated", n),
	)

	eng.log.Info("scoring pass complete",
		"trigger", trigger,
		"listings", len(listings),
		"updated", n,
		"duration", time.Since(start),
	)
	return n, nil
}

// scorePass is the locked part of a pass: load, score, write.
func (eng *Engine) scorePass(ctx context.Context, trigger string) ([]domain.Listing, []score.ScoredListing, int, error) {
	listings, err := eng.store.ListAllListings(ctx)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("loading listings: %w", err)
	}

	attrs := make([]domain.ListingAttributes, len(listings))
	for i := range listings {
		attrs[i] = listings[i].Attributes()
	}

	scored := eng.scorer.ScoreAll(attrs)
	metrics.ListingsTotal.Set(float64(len(listings)))
	eng.passSizes.Record(ctx, int64(len(listings)),
		metric.WithAttributes(attribute.String("trigger", trigger)),
	)
	if len(scored) == 0 {
		return listings, scored, 0, nil
	}

	updates := make([]domain.ScoreUpdate, len(scored))
	for i := range scored {
		updates[i] = scored[i].Update()
		metrics.ScoringDistribution.Observe(float64(scored[i].Composite.Total))
	}

	n, err := eng.store.UpdateScores(ctx, updates)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("persisting scores: %w", err)
	}
	return listings, scored, n, nil
}

// Stats computes score analytics over the stored collection.
func (eng *Engine) Stats(ctx context.Context, topN int) (score.Stats[*domain.Listing], error) {
	ctx, span := eng.tracer.Start(ctx, "engine.stats")
	defer span.End()

	listings, err := eng.store.ListAllListings(ctx)
	if err != nil {
		return score.Stats[*domain.Listing]{}, fmt.Errorf("loading listings: %w", err)
	}

	items := make([]*domain.Listing, len(listings))
	for i := range listings {
		items[i] = &listings[i]
	}
	return score.Analyze(items, topN), nil
}

// Distribution is the list of stored composite scores with their histogram.
type Distribution struct {
	Scores    []int          `json:"scores"    doc:"Every stored composite score, highest first"`
	Histogram []score.Bucket `json:"histogram" doc:"Counts per fixed score range"`
}

// scoreValue adapts a bare score to the analytics input.
type scoreValue int

func (v scoreValue) GetScore() *int {
	s := int(v)
	return &s
}

// Distribution returns every stored composite score and its histogram.
func (eng *Engine) Distribution(ctx context.Context) (Distribution, error) {
	scores, err := eng.store.ListScores(ctx)
	if err != nil {
		return Distribution{}, fmt.Errorf("loading scores: %w", err)
	}

	values := make([]scoreValue, len(scores))
	for i, s := range scores {
		values[i] = scoreValue(s)
	}
	return Distribution{
		Scores:    append([]int{}, scores...),
		Histogram: score.Analyze(values, 0).Histogram,
	}, nil
}

// CleanupResult summarizes one cleanup run.
type CleanupResult struct {
	Deleted int `json:"deleted"`
	Scored  int `json:"scored"`
}

// Cleanup deletes listings not fetched within maxAge and rescores the rest
// when anything was removed.
func (eng *Engine) Cleanup(ctx context.Context, maxAge time.Duration) (CleanupResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.cleanup",
		trace.WithAttributes(attribute.String("max_age", maxAge.String())),
	)
	defer span.End()

	deleted, err := eng.store.DeleteListingsOlderThan(ctx, maxAge)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("deleting stale listings: %w", err)
	}
	metrics.CleanupDeletedTotal.Add(float64(deleted))

	res := CleanupResult{Deleted: deleted}
	if deleted == 0 {
		return res, nil
	}

	eng.log.Info("deleted stale listings", "count", deleted, "max_age", maxAge)
	res.Scored, err = eng.rescore(ctx, metrics.TriggerCleanup)
	if err != nil {
		return res, fmt.Errorf("rescoring after cleanup: %w", err)
	}
	return res, nil
}
