package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/car-deal-finder/internal/metrics"
	"github.com/donaldgifford/car-deal-finder/internal/notify"
	"github.com/donaldgifford/car-deal-finder/internal/store"
	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/car-deal-finder/internal/engine"

// ErrRescoreThrottled is returned when a manual rescore arrives faster than
// the configured rate allows.
var ErrRescoreThrottled = errors.New("rescore throttled")

// ErrMissingURL is returned for ingested listings without a URL.
var ErrMissingURL = errors.New("listing url is required")

// Engine orchestrates ingestion, scoring passes, analytics and cleanup.
type Engine struct {
	store      store.Store
	scorer     *score.Scorer
	classifier *condition.Classifier
	log        *slog.Logger

	limiter   *rate.Limiter
	tracer    trace.Tracer
	meter     metric.Meter
	passSizes metric.Int64Histogram
	passMu    sync.Mutex

	notifier      notify.Notifier
	searchTerm    string
	alertMinScore int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	sc *score.Scorer,
	c *condition.Classifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:      s,
		scorer:     sc,
		classifier: c,
		log:        slog.Default(),
		limiter:    rate.NewLimiter(rate.Inf, 1),
		tracer:     otel.Tracer(instrumentationName),
		meter:      otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(eng)
	}

	h, err := eng.meter.Int64Histogram("car_deal_finder.rescore.listings",
		metric.WithDescription("Listings considered per scoring pass."),
	)
	if err != nil {
		eng.log.Warn("creating pass size histogram", "error", err)
		h = metricnoop.Int64Histogram{}
	}
	eng.passSizes = h

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithRescoreLimiter throttles manually triggered scoring passes.
func WithRescoreLimiter(limit rate.Limit, burst int) EngineOption {
	return func(e *Engine) {
		e.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithTracer sets the tracer used for pass spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// WithMeter sets the OpenTelemetry meter.
func WithMeter(m metric.Meter) EngineOption {
	return func(e *Engine) {
		e.meter = m
	}
}

// Scorer returns the scoring core the engine runs passes with.
func (eng *Engine) Scorer() *score.Scorer {
	return eng.scorer
}

// Classifier returns the condition classifier.
func (eng *Engine) Classifier() *condition.Classifier {
	return eng.classifier
}

// IngestResult summarizes one ingest call.
type IngestResult struct {
	Received int `json:"received" doc:"Listings in the request"`
	Stored   int `json:"stored"   doc:"Listings created or updated"`
	Failed   int `json:"failed"   doc:"Listings that could not be stored"`
	Scored   int `json:"scored"   doc:"Scores written by the follow-up scoring pass"`
}

// Ingest classifies and stores extracted listings, then rescores the whole
// collection when anything was stored. Per-listing failures are joined into
// the returned error; the remaining listings are still processed.
func (eng *Engine) Ingest(ctx context.Context, listings []domain.IngestListing) (IngestResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.ingest",
		trace.WithAttributes(attribute.Int("listings", len(listings))),
	)
	defer span.End()

	res := IngestResult{Received: len(listings)}
	var errs []error

	converted := make([]*domain.Listing, len(listings))
	texts := make([]*string, len(listings))
	for i := range listings {
		converted[i] = listings[i].ToListing()
		texts[i] = converted[i].ConditionText
	}
	conditions := eng.classifier.ClassifyBatch(texts)

	for i, l := range converted {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		if l.URL == "" {
			res.Failed++
			errs = append(errs, fmt.Errorf("listing %d: %w", i, ErrMissingURL))
			continue
		}
		setCondition(l, conditions[i].Score)

		if err := eng.store.UpsertListing(ctx, l); err != nil {
			res.Failed++
			metrics.IngestErrorsTotal.Inc()
			eng.log.Error("upsert failed", "url", l.URL, "error", err)
			errs = append(errs, fmt.Errorf("storing %s: %w", l.URL, err))
			continue
		}
		res.Stored++
		metrics.IngestListingsTotal.Inc()
	}

	if res.Stored > 0 {
		n, err := eng.rescore(ctx, metrics.TriggerIngest)
		if err != nil {
			errs = append(errs, fmt.Errorf("rescoring after ingest: %w", err))
		}
		res.Scored = n
	}

	eng.log.Info("ingest complete",
		"received", res.Received,
		"stored", res.Stored,
		"failed", res.Failed,
		"scored", res.Scored,
	)
	return res, errors.Join(errs...)
}

// setCondition stores the classified condition score and its label.
func setCondition(l *domain.Listing, s float64) {
	label := condition.Describe(s)
	l.ConditionScore = &s
	l.ConditionLabel = string(label)
	metrics.ConditionClassificationsTotal.WithLabelValues(string(label)).Inc()
}

// UpdateListing applies a partial update. A new condition text without an
// explicit condition score is reclassified. When a scoring input changes,
// the collection is rescored and the fresh listing is returned.
func (eng *Engine) UpdateListing(
	ctx context.Context,
	id string,
	p *domain.ListingPatch,
) (*domain.Listing, error) {
	if p.ConditionText != nil && p.ConditionScore == nil {
		s, _ := eng.classifier.Classify(p.ConditionText)
		label := string(condition.Describe(s))
		p.ConditionScore = &s
		p.ConditionLabel = &label
	}

	l, err := eng.store.UpdateListing(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("updating listing %s: %w", id, err)
	}

	if !touchesScoring(p) {
		return l, nil
	}

	if _, err := eng.rescore(ctx, metrics.TriggerManual); err != nil {
		return nil, fmt.Errorf("rescoring after update: %w", err)
	}
	l, err = eng.store.GetListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reloading listing %s: %w", id, err)
	}
	return l, nil
}

func touchesScoring(p *domain.ListingPatch) bool {
	return p.Price != nil || p.ModelYear != nil || p.Mileage != nil ||
		p.ConditionText != nil || p.ConditionScore != nil
}
