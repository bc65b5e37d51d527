package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/car-deal-finder/internal/metrics"
	storeMocks "github.com/donaldgifford/car-deal-finder/internal/store/mocks"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func priceListings() []domain.Listing {
	return []domain.Listing{
		{ID: "a", Price: ptr(100.0), ModelYear: ptr(2010), Mileage: ptr(100000)},
		{ID: "b", Price: ptr(120.0), ModelYear: ptr(2010), Mileage: ptr(100000)},
		{ID: "c", Price: ptr(150.0), ModelYear: ptr(2010), Mileage: ptr(100000)},
		{ID: "d", Price: ptr(80.0), ModelYear: ptr(2010), Mileage: ptr(100000)},
		{ID: "e", Price: ptr(200.0), ModelYear: ptr(2010), Mileage: ptr(100000)},
	}
}

func TestRunRescore_PersistsEveryListing(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	expectScoringLock(ms)
	ms.EXPECT().ListAllListings(mock.Anything).Return(priceListings(), nil).Once()

	var got []domain.ScoreUpdate
	ms.EXPECT().UpdateScores(mock.Anything, mock.Anything).
		Run(func(_ context.Context, updates []domain.ScoreUpdate) {
			got = updates
		}).
		Return(5, nil).Once()

	n, err := eng.RunRescore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.Len(t, got, 5)
	byID := make(map[string]domain.ScoreUpdate, len(got))
	for _, u := range got {
		byID[u.ID] = u
	}
	assert.InDelta(t, 1.0, byID["d"].Components.Price, 1e-9)
	assert.InDelta(t, 0.0, byID["e"].Components.Price, 1e-9)
	// Identical years and mileages are degenerate.
	assert.InDelta(t, domain.NeutralScore, byID["a"].Components.Year, 1e-9)
	assert.InDelta(t, domain.NeutralScore, byID["a"].Components.Mileage, 1e-9)

	for _, u := range got {
		assert.LessOrEqual(t, u.Composite.Total, byID["d"].Composite.Total)
	}
}

func TestRunRescore_EmptyCollection(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	expectScoringLock(ms)
	ms.EXPECT().ListAllListings(mock.Anything).Return([]domain.Listing{}, nil).Once()

	n, err := eng.RunRescore(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunRescore_Errors(t *testing.T) {
	t.Parallel()

	t.Run("load", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms)

		loadErr := errors.New("timeout")
		expectScoringLock(ms)
		ms.EXPECT().ListAllListings(mock.Anything).Return(nil, loadErr).Once()

		_, err := eng.RunRescore(context.Background())
		require.ErrorIs(t, err, loadErr)
		assert.Contains(t, err.Error(), "loading listings")
	})

	t.Run("persist", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms)

		writeErr := errors.New("deadlock")
		expectScoringLock(ms)
		ms.EXPECT().ListAllListings(mock.Anything).Return(priceListings(), nil).Once()
		ms.EXPECT().UpdateScores(mock.Anything, mock.Anything).Return(0, writeErr).Once()

		n, err := eng.RunRescore(context.Background())
		require.ErrorIs(t, err, writeErr)
		assert.Zero(t, n)
	})
}

func TestRunRescore_LoadAndWriteHoldScoringLock(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	locked := false
	ms.EXPECT().WithScoringLock(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			locked = true
			defer func() { locked = false }()
			return fn(ctx)
		}).Once()
	ms.EXPECT().ListAllListings(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Listing, error) {
			assert.True(t, locked, "listings loaded outside the scoring lock")
			return priceListings(), nil
		}).Once()
	ms.EXPECT().UpdateScores(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, updates []domain.ScoreUpdate) (int, error) {
			assert.True(t, locked, "scores written outside the scoring lock")
			return len(updates), nil
		}).Once()

	n, err := eng.RunRescore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.False(t, locked)
}

func TestRunRescore_LockError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	lockErr := errors.New("acquiring scoring lock: canceling statement due to user request")
	ms.EXPECT().WithScoringLock(mock.Anything, mock.Anything).Return(lockErr).Once()

	n, err := eng.RunRescore(context.Background())
	require.ErrorIs(t, err, lockErr)
	assert.Zero(t, n)
}

func TestTriggerRescore_Throttled(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms, WithRescoreLimiter(rate.Every(time.Hour), 1))

	expectScoringLock(ms)
	ms.EXPECT().ListAllListings(mock.Anything).Return([]domain.Listing{}, nil).Once()

	before := ptestutil.ToFloat64(metrics.RescoreThrottledTotal)

	_, err := eng.TriggerRescore(context.Background())
	require.NoError(t, err)

	_, err = eng.TriggerRescore(context.Background())
	require.ErrorIs(t, err, ErrRescoreThrottled)

	assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.RescoreThrottledTotal), 1e-9)
}

func TestStats(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().ListAllListings(mock.Anything).Return([]domain.Listing{
		{ID: "a", Score: ptr(10)},
		{ID: "b", Score: ptr(90)},
		{ID: "c"},
		{ID: "d", Score: ptr(50)},
	}, nil).Once()

	st, err := eng.Stats(context.Background(), 2)
	require.NoError(t, err)

	assert.False(t, st.NoData)
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 3, st.Scored)
	assert.Equal(t, 1, st.Unscored)
	assert.Equal(t, 10, st.Min)
	assert.Equal(t, 90, st.Max)
	assert.InDelta(t, 50.0, st.Mean, 1e-9)
	assert.InDelta(t, 50.0, st.Median, 1e-9)
	require.Len(t, st.Top, 2)
	assert.Equal(t, "b", st.Top[0].ID)
	assert.Equal(t, "d", st.Top[1].ID)
}

func TestStats_NoData(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().ListAllListings(mock.Anything).Return([]domain.Listing{{ID: "a"}}, nil).Once()

	st, err := eng.Stats(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, st.NoData)
	assert.Empty(t, st.Top)
	assert.Len(t, st.Histogram, 5)
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().ListScores(mock.Anything).Return([]int{100, 80, 79, 20, 19, 0}, nil).Once()

	d, err := eng.Distribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{100, 80, 79, 20, 19, 0}, d.Scores)

	counts := make(map[string]int, len(d.Histogram))
	for _, b := range d.Histogram {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, map[string]int{
		"0-19":   2,
		"20-39":  1,
		"40-59":  0,
		"60-79":  1,
		"80-100": 2,
	}, counts)
}

func TestDistribution_Empty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().ListScores(mock.Anything).Return(nil, nil).Once()

	d, err := eng.Distribution(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, d.Scores)
	assert.Empty(t, d.Scores)
	assert.Len(t, d.Histogram, 5)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	t.Run("nothing stale skips rescore", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms)

		ms.EXPECT().DeleteListingsOlderThan(mock.Anything, 7*24*time.Hour).Return(0, nil).Once()

		res, err := eng.Cleanup(context.Background(), 7*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, CleanupResult{}, res)
	})

	t.Run("stale listings trigger rescore", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms)

		ms.EXPECT().DeleteListingsOlderThan(mock.Anything, time.Hour).Return(2, nil).Once()
		expectScoringLock(ms)
		ms.EXPECT().ListAllListings(mock.Anything).Return(priceListings(), nil).Once()
		ms.EXPECT().UpdateScores(mock.Anything, mock.Anything).Return(5, nil).Once()

		res, err := eng.Cleanup(context.Background(), time.Hour)
		require.NoError(t, err)
		assert.Equal(t, CleanupResult{Deleted: 2, Scored: 5}, res)
	})

	t.Run("delete error", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms)

		delErr := errors.New("permission denied")
		ms.EXPECT().DeleteListingsOlderThan(mock.Anything, time.Hour).Return(0, delErr).Once()

		_, err := eng.Cleanup(context.Background(), time.Hour)
		require.ErrorIs(t, err, delErr)
	})
}
