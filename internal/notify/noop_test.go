package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/car-deal-finder/pkg/logger"
)

func TestNoOpNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(logger.Discard())
	err := n.SendAlert(context.Background(), &AlertPayload{
		SearchTerm:   "Fiat Panda",
		ListingTitle: "Fiat Panda 1,2 Easy",
		Score:        85,
	})
	require.NoError(t, err)
}

func TestNoOpNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(logger.Discard())
	alerts := []AlertPayload{
		{ListingTitle: "Fiat Panda 1,2 Easy", Score: 85},
		{ListingTitle: "Fiat Panda 1,2 Lounge", Score: 78},
	}

	require.NoError(t, n.SendBatchAlert(context.Background(), alerts, "Fiat Panda"))
	require.NoError(t, n.SendBatchAlert(context.Background(), nil, "Fiat Panda"))
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
)
