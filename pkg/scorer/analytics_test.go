package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name  string
	score *int
}

func (i item) GetScore() *int { return i.score }

func scoredItem(name string, s int) item { return item{name: name, score: &s} }

func TestAnalyze_NoData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []item
	}{
		{name: "empty", items: nil},
		{name: "all unscored", items: []item{{name: "a"}, {name: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := Analyze(tt.items, 10)
			assert.True(t, st.NoData)
			assert.Zero(t, st.Scored)
			assert.Equal(t, len(tt.items), st.Unscored)
			assert.Zero(t, st.Mean)
			assert.Empty(t, st.Top)
			require.Len(t, st.Histogram, 5)
			for _, b := range st.Histogram {
				assert.Zero(t, b.Count)
			}
		})
	}
}

func TestAnalyze_Statistics(t *testing.T) {
	t.Parallel()

	items := []item{
		scoredItem("a", 10),
		scoredItem("b", 40),
		{name: "unscored"},
		scoredItem("c", 70),
		scoredItem("d", 100),
	}

	st := Analyze(items, 10)

	assert.False(t, st.NoData)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 4, st.Scored)
	assert.Equal(t, 1, st.Unscored)
	assert.Equal(t, 10, st.Min)
	assert.Equal(t, 100, st.Max)
	assert.InDelta(t, 55.0, st.Mean, 1e-9)
	assert.InDelta(t, 55.0, st.Median, 1e-9)
	// population variance: (45² + 15² + 15² + 45²) / 4 = 1125
	assert.InDelta(t, 33.5410196625, st.Std, 1e-6)

	counts := map[string]int{}
	for _, b := range st.Histogram {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, map[string]int{
		"0-19":   1,
		"20-39":  0,
		"40-59":  1,
		"60-79":  1,
		"80-100": 1,
	}, counts)
}

func TestAnalyze_OddMedian(t *testing.T) {
	t.Parallel()

	st := Analyze([]item{scoredItem("a", 90), scoredItem("b", 20), scoredItem("c", 50)}, 0)
	assert.InDelta(t, 50.0, st.Median, 1e-9)
	assert.Empty(t, st.Top)
}

func TestAnalyze_BucketEdges(t *testing.T) {
	t.Parallel()

	items := []item{
		scoredItem("a", 0), scoredItem("b", 19), scoredItem("c", 20),
		scoredItem("d", 79), scoredItem("e", 80), scoredItem("f", 100),
	}

	st := Analyze(items, 0)
	got := make([]int, len(st.Histogram))
	for i, b := range st.Histogram {
		got[i] = b.Count
	}
	assert.Equal(t, []int{2, 1, 0, 1, 2}, got)
}

func TestAnalyze_TopStableOnTies(t *testing.T) {
	t.Parallel()

	items := []item{
		scoredItem("first", 70),
		scoredItem("low", 30),
		scoredItem("second", 70),
		scoredItem("best", 95),
		scoredItem("third", 70),
	}

	st := Analyze(items, 4)
	require.Len(t, st.Top, 4)

	names := make([]string, len(st.Top))
	for i, it := range st.Top {
		names[i] = it.name
	}
	assert.Equal(t, []string{"best", "first", "second", "third"}, names)
}

func TestAnalyze_TopLargerThanSet(t *testing.T) {
	t.Parallel()

	st := Analyze([]item{scoredItem("a", 1), {name: "none"}}, 10)
	require.Len(t, st.Top, 1)
	assert.Equal(t, "a", st.Top[0].name)
}
