package score

import (
	"errors"
	"fmt"
	"math"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// ErrInvalidWeights is returned when a weight vector is negative or does not
// sum to 1.0 within tolerance.
var ErrInvalidWeights = errors.New("invalid scoring weights")

const (
	minWeightSum = 0.99
	maxWeightSum = 1.01
)

// Weights defines the relative importance of each component score.
type Weights struct {
	Price     float64 `yaml:"price"     json:"price"`
	Year      float64 `yaml:"year"      json:"year"`
	Mileage   float64 `yaml:"mileage"   json:"mileage"`
	Condition float64 `yaml:"condition" json:"condition"`
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Price:     0.40,
		Year:      0.25,
		Mileage:   0.25,
		Condition: 0.10,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Price + w.Year + w.Mileage + w.Condition
}

// Validate checks that every weight is non-negative and that the weights sum
// to 1.0 within ±0.01.
func (w Weights) Validate() error {
	var errs []error

	for name, v := range map[string]float64{
		"price":     w.Price,
		"year":      w.Year,
		"mileage":   w.Mileage,
		"condition": w.Condition,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s weight is negative (%g)", ErrInvalidWeights, name, v))
		}
	}

	if sum := w.Sum(); sum < minWeightSum || sum > maxWeightSum {
		errs = append(errs, fmt.Errorf("%w: weights sum to %.4f, must be within [%.2f, %.2f]",
			ErrInvalidWeights, sum, minWeightSum, maxWeightSum))
	}

	return errors.Join(errs...)
}

// Aggregator combines component scores into a composite score using a
// validated weight vector.
type Aggregator struct {
	weights Weights
}

// NewAggregator validates w and returns an Aggregator bound to it.
func NewAggregator(w Weights) (*Aggregator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: w}, nil
}

// Weights returns the weight vector used by the aggregator.
func (a *Aggregator) Weights() Weights {
	return a.weights
}

// Aggregate computes the weighted composite of c.
func (a *Aggregator) Aggregate(c domain.ComponentScores) domain.CompositeScore {
	raw := c.Price*a.weights.Price +
		c.Year*a.weights.Year +
		c.Mileage*a.weights.Mileage +
		c.Condition*a.weights.Condition

	// Halves round to even: 52.5 scores 52.
	total := int(math.RoundToEven(raw * 100))
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return domain.CompositeScore{Raw: raw, Total: total}
}

// AggregatePartial is Aggregate for optional component scores. Missing
// components count as the neutral score.
func (a *Aggregator) AggregatePartial(price, year, mileage, cond *float64) domain.CompositeScore {
	return a.Aggregate(domain.ComponentScores{
		Price:     orNeutral(price),
		Year:      orNeutral(year),
		Mileage:   orNeutral(mileage),
		Condition: orNeutral(cond),
	})
}

func orNeutral(v *float64) float64 {
	if v == nil {
		return domain.NeutralScore
	}
	return *v
}
