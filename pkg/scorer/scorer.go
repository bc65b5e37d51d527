// Package score computes composite desirability scores for car listings.
//
// A scoring pass normalizes price, model year and mileage against the whole
// collection, classifies condition text, and combines the four component
// scores with a validated weight vector into an integer in [0, 100].
package score

import (
	"errors"
	"log/slog"
	"math"

	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// Config holds the scoring parameters validated once at construction.
type Config struct {
	Weights     Weights     `yaml:"weights"   json:"weights"`
	Percentiles Percentiles `yaml:"winsorize" json:"winsorize"`
}

// DefaultConfig returns the default weights and winsorization bounds.
func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights(),
		Percentiles: DefaultPercentiles(),
	}
}

// Validate checks both the weights and the percentiles.
func (c Config) Validate() error {
	return errors.Join(c.Weights.Validate(), c.Percentiles.Validate())
}

// ScoredListing is a copy of the input attributes with the scores of one pass.
type ScoredListing struct {
	domain.ListingAttributes

	Components domain.ComponentScores `json:"components"`
	Composite  domain.CompositeScore  `json:"composite"`

	// ConditionTrace is set when the condition text was classified during
	// the pass, and nil when a precomputed condition score was used.
	ConditionTrace *condition.Trace `json:"condition_trace,omitempty"`
}

// GetScore returns the composite total.
func (s *ScoredListing) GetScore() *int {
	return &s.Composite.Total
}

// Update returns the tuple persisted for this listing.
func (s *ScoredListing) Update() domain.ScoreUpdate {
	return domain.ScoreUpdate{
		ID:         s.ID,
		Components: s.Components,
		Composite:  s.Composite,
	}
}

// Scorer runs full scoring passes. It keeps no state between calls.
type Scorer struct {
	cfg        Config
	agg        *Aggregator
	classifier *condition.Classifier
	log        *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scorer) {
		s.log = l
	}
}

// WithClassifier sets the condition classifier used for listings without a
// precomputed condition score.
func WithClassifier(c *condition.Classifier) Option {
	return func(s *Scorer) {
		s.classifier = c
	}
}

// New validates cfg and returns a Scorer.
func New(cfg Config, opts ...Option) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	agg, err := NewAggregator(cfg.Weights)
	if err != nil {
		return nil, err
	}

	s := &Scorer{
		cfg: cfg,
		agg: agg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.classifier == nil {
		s.classifier = condition.New(condition.WithLogger(s.log))
	}
	return s, nil
}

// Config returns the validated scoring configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// ScoreAll scores every listing relative to the others in the slice. The
// input is not modified. Scores are deterministic for a given collection;
// adding or removing listings can change everyone's numeric scores.
func (s *Scorer) ScoreAll(listings []domain.ListingAttributes) []ScoredListing {
	if len(listings) == 0 {
		s.log.Warn("no listings to score")
		return []ScoredListing{}
	}

	prices := make([]*float64, len(listings))
	years := make([]*int, len(listings))
	mileages := make([]*int, len(listings))
	for i := range listings {
		prices[i] = listings[i].Price
		years[i] = listings[i].ModelYear
		mileages[i] = listings[i].Mileage
	}

	priceScores := Normalize(prices, AttributePrice, s.cfg.Percentiles, s.log)
	yearScores := Normalize(intsToFloats(years), AttributeYear, s.cfg.Percentiles, s.log)
	mileageScores := Normalize(intsToFloats(mileages), AttributeMileage, s.cfg.Percentiles, s.log)

	out := make([]ScoredListing, len(listings))
	for i := range listings {
		sl := ScoredListing{ListingAttributes: listings[i]}

		cond := domain.NeutralScore
		if sl.ConditionScore != nil {
			cond = conditionComponent(*sl.ConditionScore)
		} else {
			var trace condition.Trace
			cond, trace = s.classifier.Classify(sl.ConditionText)
			sl.ConditionTrace = &trace
		}

		sl.Components = domain.ComponentScores{
			Price:     priceScores[i],
			Year:      yearScores[i],
			Mileage:   mileageScores[i],
			Condition: cond,
		}
		sl.Composite = s.agg.Aggregate(sl.Components)
		out[i] = sl
	}

	s.log.Debug("scored listings", "count", len(out))
	return out
}

// conditionComponent clips a precomputed condition score to [0, 1]. NaN
// counts as neutral.
func conditionComponent(v float64) float64 {
	if math.IsNaN(v) {
		return domain.NeutralScore
	}
	return math.Max(0, math.Min(1, v))
}
