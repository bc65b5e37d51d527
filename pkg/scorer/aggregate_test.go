package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func TestWeights_Default(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Sum(), 0.001, "default weights should sum to 1.0")
	assert.NoError(t, w.Validate())
}

func TestNewAggregator_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{
			name:    "defaults",
			weights: DefaultWeights(),
		},
		{
			name:    "sum within tolerance",
			weights: Weights{Price: 0.404, Year: 0.25, Mileage: 0.25, Condition: 0.1},
		},
		{
			name:    "sum too high",
			weights: Weights{Price: 0.9, Year: 0.25, Mileage: 0.25, Condition: 0.1},
			wantErr: true,
		},
		{
			name:    "sum too low",
			weights: Weights{Price: 0.2, Year: 0.25, Mileage: 0.25, Condition: 0.1},
			wantErr: true,
		},
		{
			name:    "negative weight",
			weights: Weights{Price: 0.6, Year: 0.25, Mileage: 0.25, Condition: -0.1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			agg, err := NewAggregator(tt.weights)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidWeights)
				assert.Nil(t, agg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.weights, agg.Weights())
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(DefaultWeights())
	require.NoError(t, err)

	tests := []struct {
		name      string
		c         domain.ComponentScores
		wantTotal int
		wantRaw   float64
	}{
		{
			name:      "all best",
			c:         domain.ComponentScores{Price: 1, Year: 1, Mileage: 1, Condition: 1},
			wantTotal: 100,
			wantRaw:   1.0,
		},
		{
			name:      "all worst",
			c:         domain.ComponentScores{},
			wantTotal: 0,
			wantRaw:   0.0,
		},
		{
			name:      "neutral",
			c:         domain.NeutralComponents(),
			wantTotal: 50,
			wantRaw:   0.5,
		},
		{
			name:      "price only",
			c:         domain.ComponentScores{Price: 1},
			wantTotal: 40,
			wantRaw:   0.4,
		},
		{
			name:      "mixed",
			c:         domain.ComponentScores{Price: 0.8, Year: 0.6, Mileage: 0.2, Condition: 0.7},
			wantTotal: 59,
			wantRaw:   0.59,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := agg.Aggregate(tt.c)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.InDelta(t, tt.wantRaw, got.Raw, 1e-9)
		})
	}
}

func TestAggregate_RoundsHalfToEven(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(Weights{Price: 1})
	require.NoError(t, err)

	assert.Equal(t, 12, agg.Aggregate(domain.ComponentScores{Price: 0.125}).Total)
	assert.Equal(t, 12, agg.Aggregate(domain.ComponentScores{Price: 0.12}).Total)
	assert.Equal(t, 14, agg.Aggregate(domain.ComponentScores{Price: 0.135}).Total)
}

func TestAggregate_NeutralAttributesWithLexiconConditions(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(DefaultWeights())
	require.NoError(t, err)

	tests := []struct {
		condition float64
		wantTotal int
	}{
		{condition: 0.35, wantTotal: 48},
		{condition: 0.55, wantTotal: 50},
		{condition: 0.75, wantTotal: 52},
	}

	for _, tt := range tests {
		got := agg.Aggregate(domain.ComponentScores{
			Price:     0.5,
			Year:      0.5,
			Mileage:   0.5,
			Condition: tt.condition,
		})
		assert.Equal(t, tt.wantTotal, got.Total, "condition %.2f", tt.condition)
	}
}

func TestAggregate_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(Weights{Price: 1})
	require.NoError(t, err)

	assert.Equal(t, 100, agg.Aggregate(domain.ComponentScores{Price: 1.7}).Total)
	assert.Equal(t, 0, agg.Aggregate(domain.ComponentScores{Price: -0.3}).Total)
}

func TestAggregatePartial(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, 50, agg.AggregatePartial(nil, nil, nil, nil).Total)

	one := 1.0
	got := agg.AggregatePartial(&one, nil, nil, nil)
	// 0.4 + 0.5*0.6
	assert.InDelta(t, 0.7, got.Raw, 1e-9)
	assert.Equal(t, 70, got.Total)
}
