package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/car-deal-finder/internal/engine"
	storeMocks "github.com/donaldgifford/car-deal-finder/internal/store/mocks"
	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	"github.com/donaldgifford/car-deal-finder/pkg/logger"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
)

const testID = "2f1c9c1e-5b7e-4f51-9d8e-1c2f0b4f7a10"

func ptr[T any](v T) *T { return &v }

// newEngine returns an engine over the mock store with quiet logging.
func newEngine(t *testing.T, ms *storeMocks.MockStore, opts ...engine.EngineOption) *engine.Engine {
	t.Helper()

	l := logger.Discard()
	c := condition.New(condition.WithLogger(l))
	sc, err := score.New(score.DefaultConfig(), score.WithLogger(l), score.WithClassifier(c))
	require.NoError(t, err)

	return engine.NewEngine(ms, sc, c, append([]engine.EngineOption{engine.WithLogger(l)}, opts...)...)
}

// expectScoringLock expects one locked scoring pass and runs it inline.
func expectScoringLock(ms *storeMocks.MockStore) {
	ms.EXPECT().WithScoringLock(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Once()
}
