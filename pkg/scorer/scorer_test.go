package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()

	s, err := New(DefaultConfig(), WithLogger(quietLogger()))
	require.NoError(t, err)
	return s
}

func sampleListings() []domain.ListingAttributes {
	return []domain.ListingAttributes{
		{ID: "a", Price: ptr(85000.0), ModelYear: ptr(2012), Mileage: ptr(120000), ConditionText: ptr("god stand")},
		{ID: "b", Price: ptr(65000.0), ModelYear: ptr(2014), Mileage: ptr(90000), ConditionText: ptr("Pæn bil men med rust")},
		{ID: "c", Price: ptr(120000.0), ModelYear: ptr(2018), Mileage: ptr(40000), ConditionText: ptr("som ny")},
		{ID: "d", Price: ptr(45000.0), ModelYear: ptr(2009), Mileage: ptr(180000)},
		{ID: "e", Price: ptr(55000.0), ModelYear: ptr(2011), Mileage: ptr(140000), ConditionText: ptr("slidt")},
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "bad weights",
			cfg:     Config{Weights: Weights{Price: 1.5}, Percentiles: DefaultPercentiles()},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "bad percentiles",
			cfg:     Config{Weights: DefaultWeights(), Percentiles: Percentiles{Lower: 0.9, Upper: 0.1}},
			wantErr: ErrInvalidPercentiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := New(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestScoreAll_Empty(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	got := s.ScoreAll(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScoreAll_PriceScenario(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	got := s.ScoreAll(sampleListings())
	require.Len(t, got, 5)

	best := 0
	for i := range got {
		if got[i].Components.Price > got[best].Components.Price {
			best = i
		}
	}
	assert.Equal(t, "d", got[best].ID, "the 45000 listing has the highest price score")
}

func TestScoreAll_Ranges(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	for _, sl := range s.ScoreAll(sampleListings()) {
		for _, c := range []float64{sl.Components.Price, sl.Components.Year, sl.Components.Mileage, sl.Components.Condition} {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
		assert.GreaterOrEqual(t, sl.Composite.Total, 0)
		assert.LessOrEqual(t, sl.Composite.Total, 100)
	}
}

func TestScoreAll_Idempotent(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	in := sampleListings()

	assert.Equal(t, s.ScoreAll(in), s.ScoreAll(in))
}

func TestScoreAll_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	in := sampleListings()
	before := sampleListings()

	s.ScoreAll(in)
	assert.Equal(t, before, in)
}

func TestScoreAll_MissingFields(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	in := sampleListings()
	in = append(in, domain.ListingAttributes{ID: "bare"})

	got := s.ScoreAll(in)
	bare := got[len(got)-1]

	assert.Equal(t, domain.NeutralComponents(), bare.Components)
	assert.Equal(t, 50, bare.Composite.Total)
	require.NotNil(t, bare.ConditionTrace)
	assert.True(t, bare.ConditionTrace.NoInput)
}

func TestScoreAll_IdenticalPrices(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	in := sampleListings()
	for i := range in {
		in[i].Price = ptr(60000.0)
	}

	for _, sl := range s.ScoreAll(in) {
		assert.Equal(t, 0.5, sl.Components.Price)
	}
}

func TestScoreAll_PrecomputedCondition(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	in := []domain.ListingAttributes{
		{ID: "x", ConditionText: ptr("defekt"), ConditionScore: ptr(0.9)},
		{ID: "y", ConditionText: ptr("defekt")},
	}

	got := s.ScoreAll(in)
	assert.Equal(t, 0.9, got[0].Components.Condition)
	assert.Nil(t, got[0].ConditionTrace)
	assert.Equal(t, 0.0, got[1].Components.Condition)
	require.NotNil(t, got[1].ConditionTrace)
	assert.True(t, got[1].ConditionTrace.BaseMatched)
}

func TestScoreAll_PrecomputedConditionClipped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{name: "above one", score: 1.7, want: 1.0},
		{name: "below zero", score: -0.4, want: 0.0},
		{name: "nan is neutral", score: math.NaN(), want: domain.NeutralScore},
		{name: "in range untouched", score: 0.35, want: 0.35},
	}

	s := newTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.ScoreAll([]domain.ListingAttributes{{ID: "x", ConditionScore: ptr(tt.score)}})
			require.Len(t, got, 1)
			assert.InDelta(t, tt.want, got[0].Components.Condition, 1e-12)
			assert.False(t, math.IsNaN(got[0].Composite.Raw))
			assert.GreaterOrEqual(t, got[0].Composite.Raw, 0.0)
			assert.LessOrEqual(t, got[0].Composite.Raw, 1.0)
		})
	}
}

func TestScoreAll_ConditionCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	got := s.ScoreAll([]domain.ListingAttributes{
		{ID: "upper", ConditionText: ptr("NYSYNET")},
		{ID: "lower", ConditionText: ptr("nysynet")},
	})

	assert.Equal(t, got[0].Components.Condition, got[1].Components.Condition)
	assert.Equal(t, 1.0, got[0].Components.Condition)
}

func TestScoreAll_CustomClassifier(t *testing.T) {
	t.Parallel()

	lex := condition.NewLexicon(map[string]float64{"skinnende": 1.0}, nil, nil, nil)
	s, err := New(DefaultConfig(),
		WithLogger(quietLogger()),
		WithClassifier(condition.New(condition.WithLexicon(lex))),
	)
	require.NoError(t, err)

	got := s.ScoreAll([]domain.ListingAttributes{{ID: "x", ConditionText: ptr("skinnende")}})
	assert.Equal(t, 1.0, got[0].Components.Condition)
}

func TestScoredListing_Update(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	got := s.ScoreAll(sampleListings())

	u := got[2].Update()
	assert.Equal(t, "c", u.ID)
	assert.Equal(t, got[2].Components, u.Components)
	assert.Equal(t, got[2].Composite, u.Composite)
	assert.Equal(t, got[2].Composite.Total, *got[2].GetScore())
}
