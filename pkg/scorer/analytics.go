package score

import (
	"cmp"
	"math"
	"slices"
)

// Scorable is anything carrying an optional composite score.
type Scorable interface {
	GetScore() *int
}

// Bucket is one fixed histogram range, inclusive at both ends.
type Bucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

// Stats summarizes the composite scores of a collection. When NoData is set
// the statistics are zero values and must not be presented as real numbers.
type Stats[T Scorable] struct {
	NoData    bool     `json:"no_data"`
	Total     int      `json:"total"`
	Scored    int      `json:"scored"`
	Unscored  int      `json:"unscored"`
	Min       int      `json:"min"`
	Max       int      `json:"max"`
	Mean      float64  `json:"mean"`
	Median    float64  `json:"median"`
	Std       float64  `json:"std"`
	Histogram []Bucket `json:"histogram"`
	Top       []T      `json:"top"`
}

// Buckets returns the empty histogram ranges in ascending order.
func Buckets() []Bucket {
	return []Bucket{
		{Label: "0-19", Min: 0, Max: 19},
		{Label: "20-39", Min: 20, Max: 39},
		{Label: "40-59", Min: 40, Max: 59},
		{Label: "60-79", Min: 60, Max: 79},
		{Label: "80-100", Min: 80, Max: 100},
	}
}

// Analyze computes summary statistics over the items that have a composite
// score and returns up to topN of them ordered by score descending. Ties keep
// their input order. The standard deviation is the population one.
func Analyze[T Scorable](items []T, topN int) Stats[T] {
	st := Stats[T]{
		Total:     len(items),
		Histogram: Buckets(),
		Top:       []T{},
	}

	scored := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetScore() != nil {
			scored = append(scored, it)
		}
	}
	st.Scored = len(scored)
	st.Unscored = st.Total - st.Scored

	if len(scored) == 0 {
		st.NoData = true
		return st
	}

	values := make([]int, len(scored))
	sum := 0
	for i, it := range scored {
		v := *it.GetScore()
		values[i] = v
		sum += v
		for b := range st.Histogram {
			if v >= st.Histogram[b].Min && v <= st.Histogram[b].Max {
				st.Histogram[b].Count++
				break
			}
		}
	}

	st.Min = slices.Min(values)
	st.Max = slices.Max(values)
	st.Mean = float64(sum) / float64(len(values))
	st.Median = median(values)

	var sq float64
	for _, v := range values {
		d := float64(v) - st.Mean
		sq += d * d
	}
	st.Std = math.Sqrt(sq / float64(len(values)))

	if topN > 0 {
		ranked := slices.Clone(scored)
		slices.SortStableFunc(ranked, func(a, b T) int {
			return cmp.Compare(*b.GetScore(), *a.GetScore())
		})
		st.Top = ranked[:min(topN, len(ranked))]
	}

	return st
}

func median(values []int) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
