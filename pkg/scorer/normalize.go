package score

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// ErrInvalidPercentiles is returned when winsorization bounds are not
// 0 <= lower < upper <= 1.
var ErrInvalidPercentiles = errors.New("invalid winsorization percentiles")

// Attribute identifies a numeric scoring attribute.
type Attribute string

// Numeric attributes normalized across the collection.
const (
	AttributePrice   Attribute = "price"
	AttributeYear    Attribute = "year"
	AttributeMileage Attribute = "mileage"
)

// lowerIsBetter reports whether small raw values should score high.
func (a Attribute) lowerIsBetter() bool {
	return a == AttributePrice || a == AttributeMileage
}

// Percentiles are the winsorization clip points as fractions.
type Percentiles struct {
	Lower float64 `yaml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" json:"upper"`
}

// DefaultPercentiles clips the bottom and top 5%.
func DefaultPercentiles() Percentiles {
	return Percentiles{Lower: 0.05, Upper: 0.95}
}

// Validate checks 0 <= Lower < Upper <= 1.
func (p Percentiles) Validate() error {
	if p.Lower < 0 || p.Upper > 1 || p.Lower >= p.Upper {
		return fmt.Errorf("%w: lower=%g upper=%g, need 0 <= lower < upper <= 1",
			ErrInvalidPercentiles, p.Lower, p.Upper)
	}
	return nil
}

// Normalize maps one attribute of every listing in a collection to [0, 1].
// Missing values score 0.5 and take no part in the statistics. Present values
// are winsorized, then min-max scaled; price and mileage are inverted so that
// cheaper and less-driven cars score higher. If no value is present, or all
// present values are equal after winsorization, they score 0.5.
func Normalize(values []*float64, attr Attribute, bounds Percentiles, log *slog.Logger) []float64 {
	if log == nil {
		log = slog.Default()
	}

	out := make([]float64, len(values))
	present := make([]float64, 0, len(values))
	positions := make([]int, 0, len(values))
	for i, v := range values {
		out[i] = domain.NeutralScore
		if v != nil {
			present = append(present, *v)
			positions = append(positions, i)
		}
	}

	if len(present) == 0 {
		log.Warn("no values present for attribute, using neutral scores", "attribute", attr)
		return out
	}

	clipped := winsorize(present, bounds)
	lo, hi := slices.Min(clipped), slices.Max(clipped)

	if lo == hi {
		log.Debug("attribute has no spread, using neutral scores", "attribute", attr, "value", lo)
		return out
	}

	for j, v := range clipped {
		s := (v - lo) / (hi - lo)
		if attr.lowerIsBetter() {
			s = 1 - s
		}
		out[positions[j]] = s
	}
	return out
}

// winsorize clips values ranked below the lower percentile to the value at
// that rank and values ranked at or above the upper percentile to the value
// just below it. Rank cutoffs truncate toward zero, so small collections may
// not be clipped at all. The input is not modified.
func winsorize(values []float64, bounds Percentiles) []float64 {
	n := len(values)
	out := slices.Clone(values)
	if n == 0 {
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case values[a] < values[b]:
			return -1
		case values[a] > values[b]:
			return 1
		default:
			return 0
		}
	})

	lowIdx := int(bounds.Lower * float64(n))
	if lowIdx > 0 && lowIdx < n {
		floor := values[order[lowIdx]]
		for _, i := range order[:lowIdx] {
			out[i] = floor
		}
	}

	upIdx := n - int((1-bounds.Upper)*float64(n))
	if upIdx > 0 && upIdx < n {
		ceiling := out[order[upIdx-1]]
		for _, i := range order[upIdx:] {
			out[i] = ceiling
		}
	}

	return out
}

func intsToFloats(values []*int) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if v != nil {
			f := float64(*v)
			out[i] = &f
		}
	}
	return out
}
